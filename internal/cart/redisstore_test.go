package cart_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxdrop/storefront/internal/cart"
)

func setupRedisStore(t *testing.T, sessionID string) *cart.RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cart.NewRedisStore(client, sessionID)
}

func TestRedisStoreLoadMissing(t *testing.T) {
	store := setupRedisStore(t, "")
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, cart.ErrNoSnapshot)
}

func TestRedisStoreSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupRedisStore(t, "session-1")

	require.NoError(t, store.Save(ctx, []byte(`[{"product_id":"A","quantity":2}]`)))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"product_id":"A","quantity":2}]`, string(data))
}

func TestRedisStoreClear(t *testing.T) {
	ctx := context.Background()
	store := setupRedisStore(t, "session-1")
	require.NoError(t, store.Save(ctx, []byte(`[]`)))

	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, cart.ErrNoSnapshot)
}

func TestRedisStoreSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	first := cart.NewRedisStore(client, "session-1")
	second := cart.NewRedisStore(client, "session-2")

	require.NoError(t, first.Save(ctx, []byte(`["one"]`)))

	_, err := second.Load(ctx)
	assert.ErrorIs(t, err, cart.ErrNoSnapshot)
}
