package core

import (
	"log/slog"
	"strconv"
)

// AdapterConfig describes how to reach a live engine.
// Options are passed through to the driver as connection parameters.
type AdapterConfig struct {
	Type     string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Options  map[string]string
}

// LogValue logs the connection target without the password.
func (c AdapterConfig) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", c.Type),
		slog.String("host", c.Host),
		slog.String("port", strconv.Itoa(c.Port)),
		slog.String("database", c.Database),
		slog.String("user", c.Username),
	}
	if c.Password != "" {
		attrs = append(attrs, slog.String("password", "***"))
	}
	return slog.GroupValue(attrs...)
}
