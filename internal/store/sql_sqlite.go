package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-auth-form/internal/config"
	"github.com/MKhiriev/go-auth-form/internal/logger"
)

// NewConnectSQLite opens the session database at cfg.DSN, creating an empty
// file first when none exists, and checks the connection.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	log = log.GetChildLogger("sqlite")

	if err := ensureDBFile(cfg.DSN); err != nil {
		log.Err(err).Str("dsn", cfg.DSN).Msg("session database file unavailable")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", cfg.DSN, err)
	}
	// single writer: concurrent connections only yield SQLITE_BUSY
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("dsn", cfg.DSN).Msg("session database unreachable")
		return nil, fmt.Errorf("ping sqlite %q: %w", cfg.DSN, err)
	}

	log.Debug().Str("dsn", cfg.DSN).Msg("session database opened")
	return &DB{DB: conn, logger: log}, nil
}

// ensureDBFile creates path with owner-only permissions unless it already
// exists. Existing contents are left untouched.
func ensureDBFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create session database file: %w", err)
	}
	return f.Close()
}
