package store

import (
	"encoding/hex"
	"hash/fnv"
	"strings"
)

// identityDigest maps an identity (email) to the storage key it is indexed
// under. The digest is one-way so the keystore never holds identities in
// clear, and identities are lower-cased and trimmed first so lookups are
// case-insensitive. FNV-1a/64 is deliberately non-cryptographic: the purpose
// is indexing and privacy, not security, and collisions are astronomically
// unlikely for real email strings.
func identityDigest(identity string) string {
	normalized := strings.ToLower(strings.TrimSpace(identity))

	h := fnv.New64a()
	h.Write([]byte(normalized))
	return hex.EncodeToString(h.Sum(nil))
}
