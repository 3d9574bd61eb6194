package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/keystore_mock.go -package=mock

// SaltRepository persists the per-identity key-derivation salt. The salt is
// not secret, but it is kept local so logins never depend on an extra
// network round trip. Rows are indexed by a one-way digest of the
// lower-cased identity, never by the identity itself.
type SaltRepository interface {
	// GetOrCreate returns the salt for identity, generating and persisting
	// a fresh 16-byte salt on first use. Idempotent: repeated calls for the
	// same identity (in any letter case) return byte-identical salts.
	GetOrCreate(ctx context.Context, identity string) ([]byte, error)

	// Store overwrites the salt for identity. Used by signup flows that
	// generate the salt elsewhere.
	Store(ctx context.Context, identity string, salt []byte) error

	// Has reports whether a salt exists for identity.
	Has(ctx context.Context, identity string) (bool, error)

	// Clear removes the salt for identity. Only data-wipe flows call this;
	// salts are otherwise never deleted or rotated.
	Clear(ctx context.Context, identity string) error
}

// WrappedKeyRepository persists the wrapped (encrypted) copy of an
// identity's master key. Same persistence substrate and identity-digest
// convention as [SaltRepository], but a separate table, so clearing one
// namespace never implicitly clears the other.
type WrappedKeyRepository interface {
	// Store upserts the wrapped-key string for identity. Last writer wins;
	// concurrent multi-process access is out of scope.
	Store(ctx context.Context, identity string, wrappedKey string) error

	// Get returns the wrapped-key string for identity, or
	// ErrWrappedKeyNotFound when no entry exists.
	Get(ctx context.Context, identity string) (string, error)

	// Clear removes the wrapped-key entry for identity.
	Clear(ctx context.Context, identity string) error
}
