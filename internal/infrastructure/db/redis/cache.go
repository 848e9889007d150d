package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache stores upstream country-data responses as opaque byte blobs.
// Key format: countries:<lookup>
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a cache whose entries expire after ttl.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Get returns the cached value for key and whether it was present.
func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return val, true, nil
}

// Set stores value under key with the configured TTL.
func (c *ResponseCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, c.key(key), value, c.ttl).Err()
}

func (c *ResponseCache) key(lookup string) string {
	return "countries:" + lookup
}
