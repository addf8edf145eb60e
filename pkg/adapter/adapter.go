// Package adapter defines how sqlshim talks to a live database engine.
//
// Rendering never needs a database; adapters exist so rendered SQL can be
// checked against the engine it targets. Concrete adapters live in
// pkg/adapters/ subdirectories and register themselves on import.
package adapter

import (
	"context"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
)

// Config is an alias for core.AdapterConfig.
type Config = core.AdapterConfig

// Adapter is a connection to one database engine.
type Adapter interface {
	// Connect establishes a connection to the database using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the database connection and releases resources.
	Close() error

	// QueryValue executes a query and returns the first column of the first
	// row as text. A NULL value is returned as valid=false.
	QueryValue(ctx context.Context, sql string) (value string, valid bool, err error)

	// ServerVersion reports the engine's version string.
	ServerVersion(ctx context.Context) (string, error)

	// Dialect returns the dialect SQL must be rendered in for this engine.
	Dialect() dialect.Dialect
}
