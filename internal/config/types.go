// Package config loads sqlshim configuration.
//
// Sources are layered with koanf; later layers win:
//
//	defaults < sqlshim.yaml < environments.<name> < SQLSHIM_* environment < command-line flags
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/leapstack-labs/sqlshim/pkg/adapter"
	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
)

// Config holds all sqlshim configuration.
type Config struct {
	Dialect      string               `koanf:"dialect"`
	Output       string               `koanf:"output"`
	Verbose      bool                 `koanf:"verbose"`
	Environment  string               `koanf:"environment"`
	Target       *TargetConfig        `koanf:"target"`
	Verify       VerifyConfig         `koanf:"verify"`
	Environments map[string]EnvConfig `koanf:"environments"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// TargetConfig describes the live engine used by verify.
type TargetConfig struct {
	Type     string            `koanf:"type"`
	Host     string            `koanf:"host"`
	Port     int               `koanf:"port"`
	User     string            `koanf:"user"`
	Password string            `koanf:"password"`
	Database string            `koanf:"database"`
	Options  map[string]string `koanf:"options"`
}

// VerifyConfig tunes the probe runner.
type VerifyConfig struct {
	Concurrency int           `koanf:"concurrency"`
	Timeout     time.Duration `koanf:"timeout"`
}

// EnvConfig holds per-environment overrides.
type EnvConfig struct {
	Dialect string        `koanf:"dialect"`
	Target  *TargetConfig `koanf:"target"`
}

// Validate checks the dialect and, when set, the target.
func (c *Config) Validate() error {
	if _, err := dialect.Lookup(c.Dialect); err != nil {
		return err
	}
	switch c.Output {
	case OutputAuto, OutputText, OutputMarkdown, OutputJSON:
	default:
		return fmt.Errorf("invalid output %q, must be one of: auto, text, markdown, json", c.Output)
	}
	if c.Verify.Concurrency < 1 {
		return fmt.Errorf("verify.concurrency must be at least 1, got %d", c.Verify.Concurrency)
	}
	if c.Target != nil && c.Target.Type != "" {
		return c.Target.Validate()
	}
	return nil
}

// Validate checks that the target names a registered adapter.
func (t *TargetConfig) Validate() error {
	if t.Type == "" {
		return fmt.Errorf("target type is required")
	}
	if !adapter.IsRegistered(strings.ToLower(t.Type)) {
		return &adapter.UnknownAdapterError{
			Type:      t.Type,
			Available: adapter.ListAdapters(),
		}
	}
	return nil
}

// AdapterConfig converts the target into an adapter connection config.
func (t *TargetConfig) AdapterConfig() core.AdapterConfig {
	return core.AdapterConfig{
		Type:     t.Type,
		Host:     t.Host,
		Port:     t.Port,
		Database: t.Database,
		Username: t.User,
		Password: t.Password,
		Options:  t.Options,
	}
}
