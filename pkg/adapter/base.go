package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/sqlshim/pkg/core"
)

// ErrNotConnected is returned when an adapter is used before Connect.
var ErrNotConnected = errors.New("database connection not established")

// ErrNoRows is returned by QueryValue when the query produced no rows.
var ErrNoRows = errors.New("query returned no rows")

// BaseSQLAdapter provides common database/sql functionality for adapters.
// Embed this struct in concrete adapter implementations to get standard
// Close, Ping and QueryValue implementations.
type BaseSQLAdapter struct {
	DB     *sql.DB
	Cfg    core.AdapterConfig
	Logger *slog.Logger
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.DB != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		return b.DB.Close()
	}
	return nil
}

// QueryValue executes a query and returns the first column of the first row.
func (b *BaseSQLAdapter) QueryValue(ctx context.Context, sqlStr string) (string, bool, error) {
	if b.DB == nil {
		return "", false, ErrNotConnected
	}

	var v sql.NullString
	err := b.DB.QueryRowContext(ctx, sqlStr).Scan(&v)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, ErrNoRows
	case err != nil:
		return "", false, fmt.Errorf("failed to execute query: %w", err)
	}
	return v.String, v.Valid, nil
}

// Ping checks the connection is alive. Adapters call it from Connect.
func (b *BaseSQLAdapter) Ping(ctx context.Context) error {
	if b.DB == nil {
		return ErrNotConnected
	}
	if err := b.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
