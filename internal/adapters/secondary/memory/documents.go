// Package memory is an in-process DocumentStore for the dev backend.
package memory

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

type collection struct {
	order []string
	docs  map[string]json.RawMessage
}

// DocumentStore holds documents in memory. Contents are lost on exit.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[string]*collection
}

var _ ports.DocumentStore = (*DocumentStore)(nil)

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{collections: make(map[string]*collection)}
}

func (s *DocumentStore) List(ctx context.Context, name string) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return []json.RawMessage{}, nil
	}

	out := make([]json.RawMessage, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, slices.Clone(c.docs[id]))
	}
	return out, nil
}

func (s *DocumentStore) Get(ctx context.Context, name, id string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return slices.Clone(doc), nil
}

func (s *DocumentStore) Put(ctx context.Context, name, id string, body json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !json.Valid(body) {
		return &apperrors.DecodeError{What: name + "/" + id, Err: apperrors.ErrBadRequest}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]json.RawMessage)}
		s.collections[name] = c
	}
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = slices.Clone(body)
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, name, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return apperrors.ErrNotFound
	}
	if _, exists := c.docs[id]; !exists {
		return apperrors.ErrNotFound
	}
	delete(c.docs, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
	return nil
}

func (s *DocumentStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
