package store

import "errors"

// Sentinel errors returned by keystore repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSaltNotFound is returned when no salt row exists for the identity.
	ErrSaltNotFound = errors.New("no salt stored for identity")

	// ErrWrappedKeyNotFound is returned when no wrapped-key row exists for
	// the identity. A missing entry is an expected condition: it simply
	// means the user must re-enter their password.
	ErrWrappedKeyNotFound = errors.New("no wrapped key stored for identity")

	// ErrDecodingSalt is returned when a persisted salt cannot be base64
	// decoded, indicating local data corruption.
	ErrDecodingSalt = errors.New("failed to decode stored salt")
)
