package store

import (
	"context"
	"fmt"

	"github.com/ilario23/PWA-GoNuts-sub002/internal/config"
	"github.com/ilario23/PWA-GoNuts-sub002/internal/logger"
)

// Storages groups the keystore repositories into a single value that can be
// passed to the service layer. Both repositories share one sqlite database
// but live in separate tables, so wiping one namespace never touches the
// other.
type Storages struct {
	// Salts holds the per-identity key-derivation salts.
	Salts SaltRepository
	// WrappedKeys holds the per-identity wrapped master keys.
	WrappedKeys WrappedKeyRepository
}

// NewStorages initialises the local keystore using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh salt and
//     wrapped-key repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("opening local keystore...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("keystore connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("keystore migration failed: %w", err)
	}

	return &Storages{
		Salts:       NewSaltRepository(db, logger),
		WrappedKeys: NewWrappedKeyRepository(db, logger),
	}, nil
}
