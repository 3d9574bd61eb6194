package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/ilario23/PWA-GoNuts-sub002/internal/logger"
)

type saltRepository struct {
	*DB
	logger *logger.Logger
}

// NewSaltRepository constructs the sqlite-backed [SaltRepository].
func NewSaltRepository(db *DB, logger *logger.Logger) SaltRepository {
	return &saltRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *saltRepository) GetOrCreate(ctx context.Context, identity string) ([]byte, error) {
	salt, err := r.get(ctx, identity)
	if err == nil {
		return salt, nil
	}
	if !errors.Is(err, ErrSaltNotFound) {
		return nil, err
	}

	salt = make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	if err := r.Store(ctx, identity, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

func (r *saltRepository) Store(ctx context.Context, identity string, salt []byte) error {
	digest := identityDigest(identity)

	_, err := r.DB.ExecContext(ctx, upsertSalt, digest, base64.StdEncoding.EncodeToString(salt))
	if err != nil {
		r.logger.Err(err).
			Str("func", "saltRepository.Store").
			Msg("failed to persist salt")
		return fmt.Errorf("failed to persist salt: %w", err)
	}

	return nil
}

func (r *saltRepository) Has(ctx context.Context, identity string) (bool, error) {
	digest := identityDigest(identity)

	var count int
	if err := r.DB.QueryRowContext(ctx, countSaltByDigest, digest).Scan(&count); err != nil {
		r.logger.Err(err).
			Str("func", "saltRepository.Has").
			Msg("failed to query salt presence")
		return false, fmt.Errorf("failed to query salt presence: %w", err)
	}

	return count > 0, nil
}

func (r *saltRepository) Clear(ctx context.Context, identity string) error {
	digest := identityDigest(identity)

	if _, err := r.DB.ExecContext(ctx, deleteSaltByDigest, digest); err != nil {
		r.logger.Err(err).
			Str("func", "saltRepository.Clear").
			Msg("failed to delete salt")
		return fmt.Errorf("failed to delete salt: %w", err)
	}

	return nil
}

func (r *saltRepository) get(ctx context.Context, identity string) ([]byte, error) {
	digest := identityDigest(identity)

	var encoded string
	err := r.DB.QueryRowContext(ctx, getSaltByDigest, digest).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSaltNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "saltRepository.get").
			Msg("failed to query salt")
		return nil, fmt.Errorf("failed to query salt: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		r.logger.Err(err).
			Str("func", "saltRepository.get").
			Msg("stored salt is not valid base64")
		return nil, fmt.Errorf("%w: %v", ErrDecodingSalt, err)
	}

	return salt, nil
}
