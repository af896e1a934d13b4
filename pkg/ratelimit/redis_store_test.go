package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justerika/signup-gateway/pkg/ratelimit"
)

func newRedisStore(t *testing.T) *ratelimit.RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return ratelimit.NewRedisStore(client)
}

func TestRedisStore_RecordIfAllowed(t *testing.T) {
	ctx := context.Background()

	t.Run("counts up to the limit", func(t *testing.T) {
		store := newRedisStore(t)
		now := time.Now()

		for i := range 3 {
			allowed, count, err := store.RecordIfAllowed(ctx, "ip", now, time.Minute, 3)
			require.NoError(t, err)
			assert.True(t, allowed)
			assert.Equal(t, int64(i+1), count)
		}

		allowed, count, err := store.RecordIfAllowed(ctx, "ip", now, time.Minute, 3)
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, int64(3), count)
	})

	t.Run("expired entries age out", func(t *testing.T) {
		store := newRedisStore(t)
		start := time.Now()

		allowed, _, err := store.RecordIfAllowed(ctx, "ip", start, time.Minute, 1)
		require.NoError(t, err)
		require.True(t, allowed)

		allowed, _, err = store.RecordIfAllowed(ctx, "ip", start, time.Minute, 1)
		require.NoError(t, err)
		require.False(t, allowed)

		// Past the window the first entry no longer counts.
		later := start.Add(2 * time.Minute)
		allowed, count, err := store.RecordIfAllowed(ctx, "ip", later, time.Minute, 1)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, int64(1), count)
	})

	t.Run("reset clears the key", func(t *testing.T) {
		store := newRedisStore(t)
		now := time.Now()

		allowed, _, err := store.RecordIfAllowed(ctx, "ip", now, time.Minute, 1)
		require.NoError(t, err)
		require.True(t, allowed)

		require.NoError(t, store.Reset(ctx, "ip"))

		allowed, count, err := store.RecordIfAllowed(ctx, "ip", now, time.Minute, 1)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, int64(1), count)
	})
}
