package memory_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorrc/restaurant-console/internal/adapters/secondary/docstoretest"
	"github.com/lorrc/restaurant-console/internal/adapters/secondary/memory"
)

func TestDocumentStore(t *testing.T) {
	docstoretest.Run(t, memory.NewDocumentStore())
}

func TestDocumentStore_RejectsInvalidJSON(t *testing.T) {
	s := memory.NewDocumentStore()
	assert.Error(t, s.Put(context.Background(), "menu_items", "x", json.RawMessage(`{`)))
}

func TestDocumentStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := memory.NewDocumentStore()
	require.NoError(t, s.Put(ctx, "menu_items", "x", json.RawMessage(`{"id":"x"}`)))

	got, err := s.Get(ctx, "menu_items", "x")
	require.NoError(t, err)
	got[2] = 'X'

	again, err := s.Get(ctx, "menu_items", "x")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x"}`, string(again))
}
