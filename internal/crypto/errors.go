package crypto

import "errors"

// Sentinel errors returned by the keychain primitives. Callers should match
// them with [errors.Is].
var (
	// ErrIntegrity is returned by decryption when the stored value is not a
	// well-formed encrypted string (wrong segment count, bad base64, wrong
	// nonce length) or when the authentication tag does not verify (wrong
	// key or tampered ciphertext). No partial plaintext is ever returned
	// alongside it.
	ErrIntegrity = errors.New("ciphertext integrity check failed")

	// ErrKeyNotExportable is returned by [Key.Export] when the key was
	// created without retaining its raw material. Wrapping keys are never
	// exportable.
	ErrKeyNotExportable = errors.New("key material is not exportable")

	// ErrInvalidKeySize is returned when raw key material is not exactly
	// 32 bytes (AES-256).
	ErrInvalidKeySize = errors.New("key must be 32 bytes")
)
