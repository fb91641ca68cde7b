package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulwark/internal/review/models"
)

func TestRedisFeedCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	ctx := context.Background()
	c := NewRedisFeedCache(client, time.Hour)

	var got []*models.Account
	hit, err := c.Get(ctx, "APP:task-1:2024-04-01", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	want := []*models.Account{{OriginName: "alice", Roles: []string{"admin", "viewer"}, RiskLevel: models.LevelMatrix}}
	require.NoError(t, c.Set(ctx, "APP:task-1:2024-04-01", want))
	assert.True(t, mr.Exists("bulwark:feed:APP:task-1:2024-04-01"))

	hit, err = c.Get(ctx, "APP:task-1:2024-04-01", &got)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].OriginName)
	assert.Equal(t, []string{"admin", "viewer"}, got[0].Roles)

	mr.FastForward(2 * time.Hour)
	hit, err = c.Get(ctx, "APP:task-1:2024-04-01", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisFeedCacheBadPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	require.NoError(t, mr.Set("bulwark:feed:broken", "{not json"))

	var got []*models.Account
	_, err := NewRedisFeedCache(client, time.Minute).Get(context.Background(), "broken", &got)
	assert.Error(t, err)
}
