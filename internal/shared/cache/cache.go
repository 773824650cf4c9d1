package cache

import (
	"context"
	"time"
)

// Store is a string key/value cache with per-entry TTL.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
