package db

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	mr := miniredis.RunT(t)
	RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { RedisClient.Close() })
	return mr
}

func TestRateLimit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := RateLimit(ctx, "10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "hit %d", i+1)
	}

	allowed, err := RateLimit(ctx, "10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = RateLimit(ctx, "10.0.0.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLockResource(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	token, err := LockResource(ctx, "menu-sync", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	other, err := LockResource(ctx, "menu-sync", time.Minute)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, UnlockResource(ctx, "menu-sync", "stale-token"))
	assert.True(t, mr.Exists("lock:menu-sync"))

	require.NoError(t, UnlockResource(ctx, "menu-sync", token))
	assert.False(t, mr.Exists("lock:menu-sync"))
}

func TestLockResource_Expires(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	first, err := LockResource(ctx, "menu-sync", time.Second)
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)

	second, err := LockResource(ctx, "menu-sync", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, second)

	require.NoError(t, UnlockResource(ctx, "menu-sync", first))
	assert.True(t, mr.Exists("lock:menu-sync"))
}
