package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bulwark/internal/identity/models"
)

const keyPrefix = "bulwark:profile:"

// RedisCache is the shared profile tier across processes.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// GetMany returns the cached profiles among keys; misses are absent from the map.
func (c *RedisCache) GetMany(ctx context.Context, keys []string) (map[string]models.Profile, error) {
	out := make(map[string]models.Profile, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	redisKeys := make([]string, len(keys))
	for i, k := range keys {
		redisKeys[i] = keyPrefix + k
	}
	vals, err := c.client.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget profiles: %w", err)
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var p models.Profile
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			continue
		}
		out[keys[i]] = p
	}
	return out, nil
}

// SetMany writes profiles in one pipeline.
func (c *RedisCache) SetMany(ctx context.Context, profiles map[string]models.Profile) error {
	if len(profiles) == 0 {
		return nil
	}
	pipe := c.client.Pipeline()
	for k, p := range profiles {
		raw, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode profile: %w", err)
		}
		pipe.Set(ctx, keyPrefix+k, raw, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("set profiles: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, keyPrefix+key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("invalidate profile: %w", err)
	}
	return nil
}
