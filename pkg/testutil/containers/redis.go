//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// RedisContainer holds a Redis instance for the feed cache, profile cache and
// notification marker suites.
type RedisContainer struct {
	Container testcontainers.Container
	URL       string
	Client    *redis.Client
}

// NewRedisContainer starts Redis and connects a client to it.
func NewRedisContainer(t *testing.T) *RedisContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}
	fail := func(msg string, err error) {
		_ = container.Terminate(ctx)
		t.Fatalf("%s: %v", msg, err)
	}

	url, err := container.ConnectionString(ctx)
	if err != nil {
		fail("failed to get redis connection string", err)
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		fail("failed to parse redis url", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		fail("failed to ping redis", err)
	}

	// Shared through the Manager; ryuk reaps the container when the binary exits.
	return &RedisContainer{Container: container, URL: url, Client: client}
}

// FlushAll empties every keyspace. Use between tests to ensure isolation.
func (r *RedisContainer) FlushAll(ctx context.Context) error {
	return r.Client.FlushAll(ctx).Err()
}
