package ports

import (
	"context"
	"time"
)

// Cache stores short-lived rendered-report snapshots. Both the Redis adapter
// and the in-memory fallback implement it.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping() error
	Close() error
}
