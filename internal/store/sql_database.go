package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/migrations"
)

// DB is the local sqlite handle shared by the client repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the session schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	version, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		db.logger.Err(err).Msg("schema migration failed")
		return err
	}

	db.logger.Debug().Int64("schema_version", version).Msg("schema is up to date")
	return nil
}
