package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const markerPrefix = "bulwark:notify:sent:"

// RedisMarker records which one-off pushes were already sent.
type RedisMarker struct {
	client *redis.Client
}

func NewRedisMarker(client *redis.Client) *RedisMarker {
	return &RedisMarker{client: client}
}

// Mark claims key for ttl. It reports false when the key was already claimed.
func (m *RedisMarker) Mark(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := m.client.SetNX(ctx, markerPrefix+key, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("set push marker: %w", err)
	}
	return ok, nil
}

// Release drops a claim so a failed push can be retried.
func (m *RedisMarker) Release(ctx context.Context, key string) error {
	if err := m.client.Del(ctx, markerPrefix+key).Err(); err != nil {
		return fmt.Errorf("delete push marker: %w", err)
	}
	return nil
}

// InMemoryMarker is a process-local marker.
type InMemoryMarker struct {
	mu      sync.Mutex
	now     func() time.Time
	expires map[string]time.Time
}

func NewInMemoryMarker() *InMemoryMarker {
	return &InMemoryMarker{now: time.Now, expires: make(map[string]time.Time)}
}

func (m *InMemoryMarker) Mark(_ context.Context, key string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if exp, ok := m.expires[key]; ok && now.Before(exp) {
		return false, nil
	}
	m.expires[key] = now.Add(ttl)
	return true, nil
}

func (m *InMemoryMarker) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.expires, key)
	return nil
}
