package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/its-jojoo/anagramdex/internal/adapter/storage"
	"github.com/its-jojoo/anagramdex/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func put(t *testing.T, st *Store, text string) bool {
	t.Helper()

	key, err := core.ComputeKey(text)
	require.NoError(t, err)

	added, err := st.Put(context.Background(), core.Entry{
		ID:        uuid.NewString(),
		Text:      text,
		Key:       key,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return added
}

func TestSQLiteStore_PutGroupCount(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	assert.True(t, put(t, st, "god"))
	assert.True(t, put(t, st, "dog"))
	assert.False(t, put(t, st, "dog"), "duplicate text must be a no-op")

	n, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	group, err := st.Group(ctx, "dgo")
	require.NoError(t, err)
	require.Len(t, group, 2)
	assert.Equal(t, "dog", group[0].Text)
	assert.Equal(t, "god", group[1].Text)
}

func TestSQLiteStore_GroupUnknown(t *testing.T) {
	st := openTestStore(t)

	_, err := st.Group(context.Background(), "zzz")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSQLiteStore_KeysSorted(t *testing.T) {
	st := openTestStore(t)

	put(t, st, "dog")
	put(t, st, "act")
	put(t, st, "bob")

	keys, err := st.Keys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []core.Key{"act", "bbo", "dgo"}, keys)
}

func TestSQLiteStore_Delete(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	put(t, st, "dog")

	require.NoError(t, st.Delete(ctx, "dgo", "dog"))
	assert.ErrorIs(t, st.Delete(ctx, "dgo", "dog"), storage.ErrNotFound)

	_, err := st.Group(ctx, "dgo")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
