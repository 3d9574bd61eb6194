package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ilario23/PWA-GoNuts-sub002/internal/logger"
)

type wrappedKeyRepository struct {
	*DB
	logger *logger.Logger
}

// NewWrappedKeyRepository constructs the sqlite-backed [WrappedKeyRepository].
func NewWrappedKeyRepository(db *DB, logger *logger.Logger) WrappedKeyRepository {
	return &wrappedKeyRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *wrappedKeyRepository) Store(ctx context.Context, identity string, wrappedKey string) error {
	digest := identityDigest(identity)

	_, err := r.DB.ExecContext(ctx, upsertWrappedKey, digest, wrappedKey)
	if err != nil {
		r.logger.Err(err).
			Str("func", "wrappedKeyRepository.Store").
			Msg("failed to persist wrapped key")
		return fmt.Errorf("failed to persist wrapped key: %w", err)
	}

	return nil
}

func (r *wrappedKeyRepository) Get(ctx context.Context, identity string) (string, error) {
	digest := identityDigest(identity)

	var wrappedKey string
	err := r.DB.QueryRowContext(ctx, getWrappedKeyByDigest, digest).Scan(&wrappedKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrWrappedKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "wrappedKeyRepository.Get").
			Msg("failed to query wrapped key")
		return "", fmt.Errorf("failed to query wrapped key: %w", err)
	}

	return wrappedKey, nil
}

func (r *wrappedKeyRepository) Clear(ctx context.Context, identity string) error {
	digest := identityDigest(identity)

	if _, err := r.DB.ExecContext(ctx, deleteWrappedKeyByDigest, digest); err != nil {
		r.logger.Err(err).
			Str("func", "wrappedKeyRepository.Clear").
			Msg("failed to delete wrapped key")
		return fmt.Errorf("failed to delete wrapped key: %w", err)
	}

	return nil
}
