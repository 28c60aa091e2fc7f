package draftstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, ttl), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key reads as empty string", func(t *testing.T) {
		store, _ := newTestRedisStore(t, 0)

		val, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, val)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		store, _ := newTestRedisStore(t, 0)

		require.NoError(t, store.Set(ctx, "s1", `{"currentStep":2}`))

		val, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, `{"currentStep":2}`, val)
	})

	t.Run("keys are namespaced per session", func(t *testing.T) {
		store, mr := newTestRedisStore(t, 0)

		require.NoError(t, store.Set(ctx, "s1", "a"))
		require.NoError(t, store.Set(ctx, "s2", "b"))

		assert.True(t, mr.Exists("booking:draft:s1"))
		assert.True(t, mr.Exists("booking:draft:s2"))

		val, err := store.Get(ctx, "s2")
		require.NoError(t, err)
		assert.Equal(t, "b", val)
	})

	t.Run("clear removes the snapshot", func(t *testing.T) {
		store, _ := newTestRedisStore(t, 0)

		require.NoError(t, store.Set(ctx, "s1", "a"))
		require.NoError(t, store.Clear(ctx, "s1"))

		val, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, val)
	})

	t.Run("snapshots expire after the ttl", func(t *testing.T) {
		store, mr := newTestRedisStore(t, time.Minute)

		require.NoError(t, store.Set(ctx, "s1", "a"))
		mr.FastForward(2 * time.Minute)

		val, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, val)
	})

	t.Run("set refreshes the ttl", func(t *testing.T) {
		store, mr := newTestRedisStore(t, time.Minute)

		require.NoError(t, store.Set(ctx, "s1", "a"))
		mr.FastForward(30 * time.Second)
		require.NoError(t, store.Set(ctx, "s1", "b"))
		mr.FastForward(45 * time.Second)

		val, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "b", val)
	})

	t.Run("zero ttl falls back to the default", func(t *testing.T) {
		store, _ := newTestRedisStore(t, 0)
		assert.Equal(t, DefaultTTL, store.ttl)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	val, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, store.Set(ctx, "s1", "a"))
	val, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "a", val)

	require.NoError(t, store.Clear(ctx, "s1"))
	val, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, val)
}
