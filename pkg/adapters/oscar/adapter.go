// Package oscar provides a database adapter for Oscar engines.
//
// Oscar servers used with sqlshim expose a MySQL-compatible wire listener,
// so the adapter drives them through go-sql-driver/mysql.
package oscar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/leapstack-labs/sqlshim/pkg/adapter"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
	oscardialect "github.com/leapstack-labs/sqlshim/pkg/dialects/oscar"
)

// DefaultPort is the listener port used when the config leaves it unset.
const DefaultPort = 2003

// Adapter implements the adapter.Adapter interface for Oscar.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new Oscar adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Dialect returns the Oscar dialect.
func (a *Adapter) Dialect() dialect.Dialect {
	return oscardialect.Oscar
}

// Connect establishes a connection to Oscar.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	dsn := buildOscarDSN(cfg)

	a.Logger.Debug("connecting to oscar", "target", cfg)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open oscar connection: %w", err)
	}

	a.DB = db
	if err := a.Ping(ctx); err != nil {
		_ = db.Close()
		a.DB = nil
		return fmt.Errorf("failed to connect to oscar: %w", err)
	}

	a.Cfg = cfg
	return nil
}

// ServerVersion reports the version string of the connected server.
func (a *Adapter) ServerVersion(ctx context.Context) (string, error) {
	v, ok, err := a.QueryValue(ctx, "SELECT VERSION()")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("server reported no version")
	}
	return v, nil
}

// buildOscarDSN constructs a driver DSN. Unknown options are passed
// through as connection parameters.
func buildOscarDSN(cfg adapter.Config) string {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	port := cfg.Port
	if port == 0 {
		port = DefaultPort
	}

	mc := mysql.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	mc.DBName = cfg.Database

	if len(cfg.Options) > 0 {
		mc.Params = make(map[string]string, len(cfg.Options))
		for k, v := range cfg.Options {
			mc.Params[k] = v
		}
	}

	return mc.FormatDSN()
}
