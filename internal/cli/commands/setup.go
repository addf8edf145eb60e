package commands

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/sqlshim/internal/cli/output"
	"github.com/leapstack-labs/sqlshim/internal/config"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

type configKey struct{}

type loggerKey struct{}

// WithConfig stores cfg in ctx.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetConfig retrieves the config from ctx, falling back to defaults.
func GetConfig(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return &config.Config{
		Dialect: config.DefaultDialect,
		Output:  config.DefaultOutput,
		Verify: config.VerifyConfig{
			Concurrency: config.DefaultConcurrency,
			Timeout:     config.DefaultTimeout,
		},
	}
}

// GetLogger retrieves the logger from ctx. Without one, logs are discarded.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.New(slog.DiscardHandler)
}

// NewCommandContext builds a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := GetConfig(cmd.Context())
	return &CommandContext{
		Cfg:      cfg,
		Logger:   GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}
}

// Dialect resolves name, or the configured dialect when name is empty.
func (c *CommandContext) Dialect(name string) (dialect.Dialect, error) {
	if name == "" {
		name = c.Cfg.Dialect
	}
	return dialect.Lookup(name)
}
