package cache

import (
	"context"
	"time"
)

// Cache is a string key/value store with per-entry expiry. It holds the
// shared Spotify access token.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
