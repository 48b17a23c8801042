package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashKey returns a stable hex digest for use as a cache key component.
func HashKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
