// Package docstoretest checks DocumentStore implementations against the
// behaviour the dev backend relies on.
package docstoretest

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// Run exercises store. The store must start empty.
func Run(t *testing.T, store ports.DocumentStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, store.Ping(ctx))
	})

	t.Run("empty collection", func(t *testing.T) {
		docs, err := store.List(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, docs)

		_, err = store.Get(ctx, "empty", "x")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.ErrorIs(t, store.Delete(ctx, "empty", "x"), apperrors.ErrNotFound)
	})

	t.Run("insertion order survives updates", func(t *testing.T) {
		for _, id := range []string{"c", "a", "b"} {
			require.NoError(t, store.Put(ctx, "ordered", id, doc(t, id, 1)))
		}
		require.NoError(t, store.Put(ctx, "ordered", "a", doc(t, "a", 2)))

		docs, err := store.List(ctx, "ordered")
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, []string{"c", "a", "b"}, ids(t, docs))

		got, err := store.Get(ctx, "ordered", "a")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"a","rev":2}`, string(got))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "deleting", "1", doc(t, "1", 1)))
		require.NoError(t, store.Put(ctx, "deleting", "2", doc(t, "2", 1)))
		require.NoError(t, store.Delete(ctx, "deleting", "1"))

		docs, err := store.List(ctx, "deleting")
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, ids(t, docs))

		_, err = store.Get(ctx, "deleting", "1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("collections are isolated", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "left", "same", doc(t, "same", 1)))
		require.NoError(t, store.Put(ctx, "right", "same", doc(t, "same", 2)))

		got, err := store.Get(ctx, "left", "same")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"same","rev":1}`, string(got))
	})

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.List(canceled, "ordered")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func doc(t *testing.T, id string, rev int) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(map[string]any{"id": id, "rev": rev})
	require.NoError(t, err)
	return b
}

func ids(t *testing.T, docs []json.RawMessage) []string {
	t.Helper()
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		var v struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(d, &v))
		out = append(out, v.ID)
	}
	return out
}
