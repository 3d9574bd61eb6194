package crypto

import (
	"encoding/base64"
	"strings"
)

// Stored ciphertext is a text value of the form
//
//	v1:<base64 nonce>:<base64 ciphertext+tag>
//
// The ":" delimiter never appears in the standard base64 alphabet, so the
// segments split unambiguously. The leading "v1" tags the format so a future
// algorithm change (e.g. raising the derivation iteration count) can be told
// apart from current data. Values written before the version tag existed had
// only the two base64 segments; parsing still accepts that legacy form.
const (
	formatVersion    = "v1"
	segmentDelimiter = ":"

	// nonceSize is the AES-GCM nonce length in bytes.
	nonceSize = 12

	// tagSize is the GCM authentication tag length; ciphertext segments are
	// never shorter than this.
	tagSize = 16
)

// encodeValue assembles the stored string form from a nonce and ciphertext.
func encodeValue(nonce, ciphertext []byte) string {
	return formatVersion + segmentDelimiter +
		base64.StdEncoding.EncodeToString(nonce) + segmentDelimiter +
		base64.StdEncoding.EncodeToString(ciphertext)
}

// parseValue splits a stored value into its nonce and ciphertext. It accepts
// the current versioned form and the legacy unversioned two-segment form.
// Returns [ErrIntegrity] when the value is not a plausible encrypted string:
// wrong segment count, unknown version, empty segments, invalid base64, a
// nonce that is not exactly nonceSize bytes, or a ciphertext shorter than
// the authentication tag.
func parseValue(value string) (nonce, ciphertext []byte, err error) {
	parts := strings.Split(value, segmentDelimiter)
	switch len(parts) {
	case 3:
		if parts[0] != formatVersion {
			return nil, nil, ErrIntegrity
		}
		parts = parts[1:]
	case 2:
		// legacy unversioned value
	default:
		return nil, nil, ErrIntegrity
	}

	if parts[0] == "" || parts[1] == "" {
		return nil, nil, ErrIntegrity
	}

	nonce, err = base64.StdEncoding.DecodeString(parts[0])
	if err != nil || len(nonce) != nonceSize {
		return nil, nil, ErrIntegrity
	}
	ciphertext, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil || len(ciphertext) < tagSize {
		return nil, nil, ErrIntegrity
	}

	return nonce, ciphertext, nil
}

// LooksEncrypted reports whether a stored value parses as an encrypted
// string. It is a cheap structural check, not a guarantee that decryption
// will succeed; its purpose is to let read paths pass legacy plaintext
// through untouched while data is migrated.
func LooksEncrypted(value string) bool {
	_, _, err := parseValue(value)
	return err == nil
}
