package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "vault"))
	require.NoError(t, err)
	return store
}

func TestFileStore_PutGet(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "drafts/li_1.json", []byte(`{"a":1}`)))

	data, err := store.Get(ctx, "drafts/li_1.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), data)

	// Keys map to real files a human can open.
	_, err = os.Stat(filepath.Join(store.Root(), "drafts", "li_1.json"))
	assert.NoError(t, err)
}

func TestFileStore_GetMissing(t *testing.T) {
	store := newTestFileStore(t)

	_, err := store.Get(context.Background(), "drafts/nope.json")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStore_Overwrite(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "rate_limits.json", []byte("one")))
	require.NoError(t, store.Put(ctx, "rate_limits.json", []byte("two")))

	data, err := store.Get(ctx, "rate_limits.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)
}

func TestFileStore_ListByPrefix(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "drafts/li_1.json", []byte("a")))
	require.NoError(t, store.Put(ctx, "drafts/li_1.md", []byte("b")))
	require.NoError(t, store.Put(ctx, "logs/2025-03-08.json", []byte("c")))

	drafts, err := store.ListByPrefix(ctx, "drafts/")
	require.NoError(t, err)
	assert.Len(t, drafts, 2)
	assert.Contains(t, drafts, "drafts/li_1.json")
	assert.Contains(t, drafts, "drafts/li_1.md")

	logs, err := store.ListByPrefix(ctx, "logs/")
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestFileStore_ListByPrefix_Empty(t *testing.T) {
	store := newTestFileStore(t)

	results, err := store.ListByPrefix(context.Background(), "drafts/")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFileStore_RejectsTraversalKeys(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	assert.Error(t, store.Put(ctx, "../escape.json", []byte("x")))
	_, err := store.Get(ctx, "/etc/passwd")
	assert.Error(t, err)
}
