package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// ContentCache is a TTL'd JSON cache for public by-slug content lookups.
// Key format: content:<collection>:<slug>. Mutations invalidate the keys
// they touch; everything else ages out on the TTL.
type ContentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewContentCache creates a ContentCache wrapping the given Redis client.
// A non-positive ttl falls back to the default.
func NewContentCache(client *redis.Client, ttl time.Duration) *ContentCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ContentCache{client: client, ttl: ttl}
}

// Get unmarshals the cached value for key into v and reports whether the
// key was present.
func (c *ContentCache) Get(ctx context.Context, key string, v any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		// A corrupt entry behaves like a miss; it will be overwritten.
		return false, nil
	}
	return true, nil
}

// Set stores v as JSON under key for the configured TTL.
func (c *ContentCache) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate removes the given keys.
func (c *ContentCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
