// Package services implements the dev backend use cases on top of a
// DocumentStore.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	apperrors "github.com/lorrc/restaurant-console/internal/core/errors"
	"github.com/lorrc/restaurant-console/internal/core/ports"
)

// Clock returns the current time. Services use time.Now when nil.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}

// Repository maps one collection of the document store onto T.
type Repository[T any] struct {
	store      ports.DocumentStore
	collection string
	id         func(T) string
}

func NewRepository[T any](store ports.DocumentStore, collection string, id func(T) string) *Repository[T] {
	return &Repository[T]{store: store, collection: collection, id: id}
}

// All returns every document in insertion order.
func (r *Repository[T]) All(ctx context.Context) ([]T, error) {
	docs, err := r.store.List(ctx, r.collection)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, &apperrors.DecodeError{What: r.collection, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// Get returns apperrors.ErrNotFound when id does not exist.
func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	doc, err := r.store.Get(ctx, r.collection, id)
	if err != nil {
		return nil, err
	}

	var v T
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, &apperrors.DecodeError{What: r.collection + "/" + id, Err: err}
	}
	return &v, nil
}

// Put inserts or replaces v under its id.
func (r *Repository[T]) Put(ctx context.Context, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, r.collection, r.id(v), body)
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, r.collection, id)
}

// Empty reports whether the collection holds no documents.
func (r *Repository[T]) Empty(ctx context.Context) (bool, error) {
	docs, err := r.store.List(ctx, r.collection)
	if err != nil {
		return false, err
	}
	return len(docs) == 0, nil
}

// notFound replaces the store's generic not-found error with target.
func notFound(err, target error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return target
	}
	return err
}
