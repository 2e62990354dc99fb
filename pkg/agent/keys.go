package agent

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashAPIKey returns the hex SHA-256 digest of an API key. Only digests are
// ever persisted or logged; key material stays in memory.
func HashAPIKey(key string) string {
	if key == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
