package crypto

import (
	"crypto/aes"
	"crypto/cipher"
)

// keySize is the raw key length in bytes. All keys in this package are
// AES-256 keys.
const keySize = 32

// Key is an opaque symmetric key handle. The application never reads key
// bytes directly: encryption goes through the cached AEAD, and the raw
// material is only reachable via [Key.Export] on keys explicitly created as
// exportable. Keys derived from a session token (wrapping keys) are not
// exportable; keys derived from a password must be, because persisting them
// across page loads requires exporting and re-encrypting the material.
type Key struct {
	aead cipher.AEAD

	// material is retained only for exportable keys, nil otherwise.
	material []byte
}

// NewKey builds a Key from 32 bytes of raw material. When exportable is true
// a private copy of the material is retained so the key can later be wrapped
// for persistence. Returns [ErrInvalidKeySize] for any other length.
func NewKey(material []byte, exportable bool) (*Key, error) {
	if len(material) != keySize {
		return nil, ErrInvalidKeySize
	}

	block, err := aes.NewCipher(material)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	k := &Key{aead: aead}
	if exportable {
		k.material = make([]byte, keySize)
		copy(k.material, material)
	}
	return k, nil
}

// Export returns a copy of the raw key material, or [ErrKeyNotExportable]
// when the key was created without retaining it.
func (k *Key) Export() ([]byte, error) {
	if k.material == nil {
		return nil, ErrKeyNotExportable
	}
	out := make([]byte, len(k.material))
	copy(out, k.material)
	return out, nil
}

// Exportable reports whether Export will succeed for this key.
func (k *Key) Exportable() bool {
	return k.material != nil
}

// Zero overwrites any retained key material. The cached AEAD stays usable;
// Zero only removes the exportable copy from memory.
func (k *Key) Zero() {
	for i := range k.material {
		k.material[i] = 0
	}
	k.material = nil
}
