// Package console holds the operator console's domain state modules. Each
// module pairs a reducer-backed store with action creators that call the
// restaurant API and dispatch the decoded result.
package console

import (
	"context"
	"log/slog"

	"github.com/lorrc/restaurant-console/internal/core/ports"
	"github.com/lorrc/restaurant-console/internal/core/store"
)

// module is the plumbing shared by every domain.
type module[S any] struct {
	name   string
	api    ports.APIClient
	store  *store.Store[S]
	logger *slog.Logger
}

func newModule[S any](name string, api ports.APIClient, st *store.Store[S], logger *slog.Logger) *module[S] {
	return &module[S]{
		name:   name,
		api:    api,
		store:  st,
		logger: logger.With("domain", name),
	}
}

// State returns the current domain state.
func (m *module[S]) State() S {
	return m.store.State()
}

// Subscribe registers l for state changes.
func (m *module[S]) Subscribe(l store.Listener[S]) (unsubscribe func()) {
	return m.store.Subscribe(l)
}

// Reset restores the domain to its initial state.
func (m *module[S]) Reset() {
	m.store.Reset()
}

// Store exposes the underlying store.
func (m *module[S]) Store() *store.Store[S] {
	return m.store
}

// execute performs req and dispatches the decoded value under kind.
func execute[T, S any](ctx context.Context, m *module[S], req ports.Request, kind store.ActionKind) (T, error) {
	return executeWith[T](ctx, m, req, kind, nil)
}

// executeWith is execute with a transform applied to the decoded value before
// it is dispatched and returned. Failures are logged and returned; nothing is
// dispatched. A response that arrives after ctx is done is dropped.
func executeWith[T, S any](ctx context.Context, m *module[S], req ports.Request, kind store.ActionKind, transform func(T) T) (T, error) {
	var zero T

	out, err := request[T](ctx, m, req)
	if err != nil {
		return zero, err
	}
	if transform != nil {
		out = transform(out)
	}
	m.store.Dispatch(store.Action{Kind: kind, Payload: out})
	return out, nil
}

// request performs req and decodes the response without dispatching.
func request[T, S any](ctx context.Context, m *module[S], req ports.Request) (T, error) {
	var out, zero T
	if err := m.api.Do(ctx, req, &out); err != nil {
		m.logger.WarnContext(ctx, "api request failed",
			"method", req.Method,
			"path", req.Path,
			"error", err,
		)
		return zero, err
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	return out, nil
}
