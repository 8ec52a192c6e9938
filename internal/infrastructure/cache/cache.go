package cache

import (
	"context"
	"time"
)

// Cache stores short-lived string values such as generated insight text.
// A miss is reported through the bool, not an error.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
