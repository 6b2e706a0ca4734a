package osm

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.osm")
	out := filepath.Join(dir, "nested", "out.osm")
	require.NoError(t, os.WriteFile(in, []byte(floorModel), 0644))

	store := NewStore()
	doc, err := store.Load(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, in, doc.Path())

	require.NoError(t, store.Save(ctx, doc, out))

	again, err := store.Load(ctx, out)
	require.NoError(t, err)
	assert.Len(t, again.Objects(domain.TypeSurface), 1)

	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestStore_LoadMissing(t *testing.T) {
	_, err := NewStore().Load(context.Background(), filepath.Join(t.TempDir(), "nope.osm"))
	assert.ErrorIs(t, err, domain.ErrPathNotFound)
}

func TestStore_LoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.osm")
	require.NoError(t, os.WriteFile(path, []byte("OS:Space, {s-1}"), 0644))

	_, err := NewStore().Load(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().Load(ctx, "whatever.osm")
	assert.ErrorIs(t, err, context.Canceled)
}
