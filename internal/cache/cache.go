// Package cache stores fetched listing pages between runs so repeated
// scrapes of slow-moving sources do not re-fetch unchanged HTML.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the page cache interface.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// PageKey generates a cache key for a fetched page URL.
func PageKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "oppscout:v1:" + hex.EncodeToString(hash[:])
}
