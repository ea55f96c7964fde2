package cart_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxdrop/storefront/internal/cart"
)

func TestFileStoreLoadMissing(t *testing.T) {
	store := cart.NewFileStore(t.TempDir())

	_, err := store.Load(context.Background())

	assert.ErrorIs(t, err, cart.ErrNoSnapshot)
}

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := cart.NewFileStore(t.TempDir())

	require.NoError(t, store.Save(ctx, []byte(`[{"product_id":"A","quantity":1}]`)))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[{"product_id":"A","quantity":1}]`, string(data))
}

func TestFileStoreSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "carts")
	store := cart.NewFileStore(dir)

	require.NoError(t, store.Save(context.Background(), []byte(`[]`)))

	_, err := os.Stat(filepath.Join(dir, cart.SnapshotKey+".json"))
	assert.NoError(t, err)
}

func TestFileStoreClear(t *testing.T) {
	ctx := context.Background()
	store := cart.NewFileStore(t.TempDir())
	require.NoError(t, store.Save(ctx, []byte(`[]`)))

	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, cart.ErrNoSnapshot)
}

func TestFileStoreClearMissingIsNoError(t *testing.T) {
	store := cart.NewFileStore(t.TempDir())
	assert.NoError(t, store.Clear(context.Background()))
}
