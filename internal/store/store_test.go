package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Put(ctx, "k", []byte(`{"v":1}`)))
	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(got))

	require.NoError(t, kv.Put(ctx, "k", []byte(`{"v":2}`)))
	got, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(got))

	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, kv.Delete(ctx, "k"))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	exerciseKV(t, s)

	in := []byte("abc")
	require.NoError(t, s.Put(context.Background(), "k", in))
	in[0] = 'x'
	out, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}

func TestSQLiteStoreInMemory(t *testing.T) {
	s, err := OpenSQLite(MemoryDSN)
	require.NoError(t, err)
	defer s.Close()
	exerciseKV(t, s)
}

func TestSQLiteStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(context.Background(), "k", []byte("persisted")))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(got))
}
