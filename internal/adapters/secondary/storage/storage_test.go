package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lorrc/restaurant-console/internal/adapters/secondary/storage"
	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s ports.KeyValueStore) {
	t.Helper()

	_, ok, err := s.Get("user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("user", `{"id":"u1"}`))
	require.NoError(t, s.Set("isAuthenticated", "true"))

	v, ok, err := s.Get("user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"u1"}`, v)

	require.NoError(t, s.Delete("user"))
	require.NoError(t, s.Delete("user"))

	_, ok, err = s.Get("user")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err = s.Get("isAuthenticated")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, storage.NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	exerciseStore(t, storage.NewFileStore(path))

	t.Run("persists across instances", func(t *testing.T) {
		require.NoError(t, storage.NewFileStore(path).Set("user", `{"id":"u2"}`))

		v, ok, err := storage.NewFileStore(path).Get("user")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"id":"u2"}`, v)
	})

	t.Run("corrupt file is reported on read and replaced on write", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))

		s := storage.NewFileStore(bad)
		_, _, err := s.Get("user")
		require.Error(t, err)

		require.NoError(t, s.Set("isAuthenticated", "true"))
		v, ok, err := s.Get("isAuthenticated")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "true", v)
	})
}
