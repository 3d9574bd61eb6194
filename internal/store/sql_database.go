package store

import (
	"database/sql"

	"github.com/ilario23/PWA-GoNuts-sub002/internal/logger"
	"github.com/ilario23/PWA-GoNuts-sub002/migrations"
)

// DB wraps the raw sql.DB handle of the local keystore together with the
// application logger.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending keystore schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
