package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const feedKeyPrefix = "bulwark:feed:"

// RedisFeedCache keeps assembled review feeds so repeated page loads skip
// the snapshot joins.
type RedisFeedCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisFeedCache(client redis.UniversalClient, ttl time.Duration) *RedisFeedCache {
	return &RedisFeedCache{client: client, ttl: ttl}
}

// Get decodes the cached value into dst. A missing key reports false.
func (c *RedisFeedCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, feedKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get feed: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode feed: %w", err)
	}
	return true, nil
}

func (c *RedisFeedCache) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	if err := c.client.Set(ctx, feedKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set feed: %w", err)
	}
	return nil
}
