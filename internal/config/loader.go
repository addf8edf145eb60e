package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config file names searched in the working directory.
const (
	FileName    = "sqlshim.yaml"
	FileNameAlt = "sqlshim.yml"
)

// EnvPrefix prefixes environment overrides: SQLSHIM_TARGET_HOST sets target.host.
const EnvPrefix = "SQLSHIM_"

// flagKeys maps flag names onto config keys where they differ.
var flagKeys = map[string]string{
	"target":      "target.type",
	"host":        "target.host",
	"port":        "target.port",
	"user":        "target.user",
	"password":    "target.password",
	"database":    "target.database",
	"concurrency": "verify.concurrency",
	"timeout":     "verify.timeout",
	"env":         "environment",
}

// flagsIgnored never reach the config tree.
var flagsIgnored = map[string]bool{
	"config": true,
	"help":   true,
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads configuration from defaults, cfgFile (or sqlshim.yaml in the
// working directory), the environment and flags, then validates it.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := findConfigFile(cfgFile)
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// SQLSHIM_VERIFY_TIMEOUT -> verify.timeout
	envK := koanf.New(".")
	if err := envK.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	flagK := koanf.New(".")
	if flags != nil {
		if err := flagK.Load(posflag.ProviderWithFlag(flags, ".", flagK, func(f *pflag.Flag) (string, any) {
			if !f.Changed || flagsIgnored[f.Name] {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// The selected environment overlays the file, below env vars and flags.
	if name := environmentName(k, envK, flagK); name != "" {
		envKey := "environments." + name
		if !k.Exists(envKey) {
			return nil, fmt.Errorf("unknown environment %q", name)
		}
		if err := k.Merge(k.Cut(envKey)); err != nil {
			return nil, fmt.Errorf("failed to apply environment %q: %w", name, err)
		}
	}

	for _, layer := range []*koanf.Koanf{envK, flagK} {
		if err := k.Merge(layer); err != nil {
			return nil, fmt.Errorf("failed to merge config: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = path

	expandTargetEnvVars(cfg.Target)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// environmentName returns the environment chosen by the highest layer that sets one.
func environmentName(layers ...*koanf.Koanf) string {
	name := ""
	for _, k := range layers {
		if v := k.String("environment"); v != "" {
			name = v
		}
	}
	return name
}

// findConfigFile returns the explicit path, or the first default file found.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{FileName, FileNameAlt} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// expandEnvVars expands ${VAR} patterns. Unset variables are left as written.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if val, ok := os.LookupEnv(match[2 : len(match)-1]); ok {
			return val
		}
		return match
	})
}

// expandTargetEnvVars expands environment variables in target connection fields.
func expandTargetEnvVars(t *TargetConfig) {
	if t == nil {
		return
	}
	t.Host = expandEnvVars(t.Host)
	t.User = expandEnvVars(t.User)
	t.Password = expandEnvVars(t.Password)
	t.Database = expandEnvVars(t.Database)
	for k, v := range t.Options {
		t.Options[k] = expandEnvVars(v)
	}
}
