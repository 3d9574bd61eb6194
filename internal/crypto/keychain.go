package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// saltSize is the per-identity salt length in bytes.
const saltSize = 16

// wrappingSalt is the fixed, application-wide salt used when deriving a
// wrapping key from a session access token. It is not a secret: the token
// itself carries the entropy, the salt only domain-separates wrapping keys
// from any other use of the same token.
const wrappingSalt = "gonuts-session-key-wrap"

// keychain is the private implementation of [Keychain].
type keychain struct {
	// PBKDF2 iteration counts. Stored in the struct so they can be tuned
	// per deployment target (e.g. mobile vs. desktop).
	passwordIterations int
	tokenIterations    int
}

// NewKeychain constructs a [Keychain] with the default PBKDF2-SHA256 cost:
//   - password derivation: 100,000 iterations (low-entropy input)
//   - token derivation:     10,000 iterations (the token is already
//     high-entropy and short-lived, so a lighter cost is acceptable)
//
// Both modes produce 256-bit AES keys.
func NewKeychain() Keychain {
	return &keychain{
		passwordIterations: 100_000,
		tokenIterations:    10_000,
	}
}

// NewKeychainWithIterations constructs a [Keychain] with explicit iteration
// counts. Intended for configuration overrides; counts below the defaults
// weaken password keys and should only be used in tests.
func NewKeychainWithIterations(passwordIterations, tokenIterations int) Keychain {
	return &keychain{
		passwordIterations: passwordIterations,
		tokenIterations:    tokenIterations,
	}
}

// GenerateSalt implements [Keychain]. It reads 16 random bytes from the OS
// CSPRNG. Returns an error only if the random read fails.
func (k *keychain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveMasterKey implements [Keychain]. It stretches the password and the
// per-identity salt through PBKDF2-SHA256 into an exportable AES-256 key.
// Deterministic: the same password and salt always produce the same key.
// Any password is accepted, including the empty string.
func (k *keychain) DeriveMasterKey(password string, salt []byte) (*Key, error) {
	material := pbkdf2.Key([]byte(password), salt, k.passwordIterations, keySize, sha256.New)
	return NewKey(material, true)
}

// DeriveWrappingKey implements [Keychain]. It derives a non-exportable
// AES-256 key from the session access token and the fixed application-wide
// salt. The result is used only to wrap and unwrap master keys, never for
// record data.
func (k *keychain) DeriveWrappingKey(token string) (*Key, error) {
	material := pbkdf2.Key([]byte(token), []byte(wrappingSalt), k.tokenIterations, keySize, sha256.New)
	return NewKey(material, false)
}

// EncryptString implements [Keychain]. It seals plaintext under key with
// AES-256-GCM using a fresh random 12-byte nonce, so encrypting the same
// plaintext twice never yields the same output. Returns the stored string
// form "v1:<base64 nonce>:<base64 ciphertext>".
func (k *keychain) EncryptString(plaintext string, key *Key) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := key.aead.Seal(nil, nonce, []byte(plaintext), nil)
	return encodeValue(nonce, ciphertext), nil
}

// DecryptString implements [Keychain]. It parses the stored string form
// (versioned or legacy) and opens the ciphertext under key. Returns
// [ErrIntegrity] when the value is malformed or the authentication tag does
// not verify; no partial plaintext is ever returned.
func (k *keychain) DecryptString(value string, key *Key) (string, error) {
	nonce, ciphertext, err := parseValue(value)
	if err != nil {
		return "", err
	}

	plaintext, err := key.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Wrong key or tampered ciphertext; the GCM error carries no
		// detail worth preserving.
		return "", ErrIntegrity
	}
	return string(plaintext), nil
}

// WrapKey implements [Keychain]. It exports the raw material of key and
// seals it under wrapping, producing a stored string that is safe to persist:
// without the wrapping key it is indistinguishable from random noise.
func (k *keychain) WrapKey(key, wrapping *Key) (string, error) {
	material, err := key.Export()
	if err != nil {
		return "", err
	}
	return k.EncryptString(string(material), wrapping)
}

// UnwrapKey implements [Keychain]. It reverses [Keychain.WrapKey]: the stored
// string is opened under wrapping and the recovered material is re-imported
// as an exportable key, so a restored key can be wrapped again for the next
// session. Returns [ErrIntegrity] when the wrapping key is wrong (e.g. the
// session token rotated) or the stored value was tampered with.
func (k *keychain) UnwrapKey(wrapped string, wrapping *Key) (*Key, error) {
	material, err := k.DecryptString(wrapped, wrapping)
	if err != nil {
		return nil, err
	}
	return NewKey([]byte(material), true)
}
