package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// Keychain owns the cryptographic primitives of the local encryption core.
// It knows nothing about storage, sessions, or users; its only job is to
// derive keys and seal/open byte strings under them.
//
// Key lifecycle it supports:
//
//	salt     = GenerateSalt()                       once per identity
//	master   = DeriveMasterKey(password, salt)      on password login
//	wrapping = DeriveWrappingKey(accessToken)       per session
//	stored   = WrapKey(master, wrapping)            persisted locally
//	master   = UnwrapKey(stored, wrapping)          on a later page load
type Keychain interface {
	// GenerateSalt returns a fresh random 16-byte salt. The salt is not a
	// secret; it only prevents precomputation across identities.
	GenerateSalt() ([]byte, error)

	// DeriveMasterKey derives the exportable AES-256 master key from the
	// user's password and their per-identity salt via PBKDF2-SHA256 with a
	// high iteration count. This key encrypts record fields.
	DeriveMasterKey(password string, salt []byte) (*Key, error)

	// DeriveWrappingKey derives a non-exportable AES-256 wrapping key from
	// a session access token and a fixed application-wide salt, with a
	// lighter iteration count. Used only to wrap/unwrap master keys.
	DeriveWrappingKey(token string) (*Key, error)

	// EncryptString seals plaintext under key with AES-256-GCM and a fresh
	// random nonce, returning the delimited base64 stored form.
	EncryptString(plaintext string, key *Key) (string, error)

	// DecryptString opens a stored value under key. Returns ErrIntegrity
	// when the value is malformed or fails authentication.
	DecryptString(value string, key *Key) (string, error)

	// WrapKey exports key and seals it under wrapping so it can be
	// persisted without ever touching disk in plaintext form.
	WrapKey(key, wrapping *Key) (string, error)

	// UnwrapKey opens a wrapped key string and re-imports the material as
	// an exportable key.
	UnwrapKey(wrapped string, wrapping *Key) (*Key, error)
}
