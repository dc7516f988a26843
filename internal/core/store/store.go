// Package store implements the reducer-backed state container shared by every
// console domain module.
package store

import "sync"

// ActionKind names a state transition. Each domain owns a fixed set.
type ActionKind string

// ResetState restores a store to its initial state in every domain that
// registers it.
const ResetState ActionKind = "RESET_STATE"

// Action is a tagged state transition. Payload is interpreted by the handler
// registered for Kind.
type Action struct {
	Kind    ActionKind
	Payload any
}

// Handler computes the next state from the current state and a payload.
// Handlers must not mutate s.
type Handler[S any] func(s S, payload any) S

// On adapts a typed handler. A payload of the wrong type leaves the state
// unchanged.
func On[S, P any](fn func(s S, p P) S) Handler[S] {
	return func(s S, payload any) S {
		p, ok := payload.(P)
		if !ok {
			return s
		}
		return fn(s, p)
	}
}

// Reset is the RESET_STATE handler for a given initial state.
func Reset[S any](initial S) Handler[S] {
	return func(S, any) S { return initial }
}

// Listener is notified after every dispatch with the resulting state.
type Listener[S any] func(S)

// Store holds one domain's state. It is safe for concurrent use.
type Store[S any] struct {
	mu        sync.Mutex
	initial   S
	state     S
	handlers  map[ActionKind]Handler[S]
	listeners map[int]Listener[S]
	nextID    int
}

// New creates a store in initial state. The handlers map is copied.
func New[S any](initial S, handlers map[ActionKind]Handler[S]) *Store[S] {
	hs := make(map[ActionKind]Handler[S], len(handlers))
	for k, h := range handlers {
		hs[k] = h
	}
	return &Store[S]{
		initial:   initial,
		state:     initial,
		handlers:  hs,
		listeners: make(map[int]Listener[S]),
	}
}

// Reduce computes the state that would follow a. Unknown kinds return s.
func (st *Store[S]) Reduce(s S, a Action) S {
	h, ok := st.handlers[a.Kind]
	if !ok {
		return s
	}
	return h(s, a.Payload)
}

// Dispatch applies a to the current state and notifies subscribers.
func (st *Store[S]) Dispatch(a Action) S {
	st.mu.Lock()
	st.state = st.Reduce(st.state, a)
	next := st.state
	listeners := make([]Listener[S], 0, len(st.listeners))
	for _, l := range st.listeners {
		listeners = append(listeners, l)
	}
	st.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return next
}

// State returns the current state.
func (st *Store[S]) State() S {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// Initial returns the state the store was created with.
func (st *Store[S]) Initial() S {
	return st.initial
}

// Reset dispatches RESET_STATE.
func (st *Store[S]) Reset() S {
	return st.Dispatch(Action{Kind: ResetState})
}

// Subscribe registers l and returns a function that removes it.
func (st *Store[S]) Subscribe(l Listener[S]) (unsubscribe func()) {
	st.mu.Lock()
	id := st.nextID
	st.nextID++
	st.listeners[id] = l
	st.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			st.mu.Lock()
			delete(st.listeners, id)
			st.mu.Unlock()
		})
	}
}
