package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLiteBackend {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "shortlist.db") + "?mode=rwc"
	b, err := NewSQLiteBackend(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestSQLiteBackendGetMissing(t *testing.T) {
	b := openTestSQLite(t)
	data, found, err := b.Get(context.Background(), CollectionCategories)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestSQLiteBackendPutReplaces(t *testing.T) {
	ctx := context.Background()
	b := openTestSQLite(t)

	require.NoError(t, b.Put(ctx, CollectionCandidates, []byte(`[{"id":1}]`)))
	require.NoError(t, b.Put(ctx, CollectionCandidates, []byte(`[]`)))

	data, found, err := b.Get(ctx, CollectionCandidates)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", string(data))
}

func TestCollectionStoreOverSQLite(t *testing.T) {
	ctx := context.Background()
	s := NewCollectionStore(openTestSQLite(t), discardLogger())

	cats, err := s.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 26)

	cats = append(cats, Category{ID: 27, Name: "Humour", ParentID: IntPtr(3), Weight: Float64Ptr(20)})
	require.NoError(t, s.SaveCategories(ctx, cats))

	got, err := s.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, cats, got)
}

func TestOpenBackendDrivers(t *testing.T) {
	ctx := context.Background()

	b, err := OpenBackend(ctx, DriverMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, b)

	b, err = OpenBackend(ctx, DriverSQLite, "file:"+filepath.Join(t.TempDir(), "x.db")+"?mode=rwc")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteBackend{}, b)
	b.Close()

	_, err = OpenBackend(ctx, Driver("mongo"), "")
	assert.Error(t, err)
}
