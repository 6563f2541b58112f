/*
 * Copyright (c) YugabyteDB, Inc.
 */

// Package store holds application state that is only changed by dispatching actions
// through a reducer.
package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNoPromiseMiddleware is returned when an action carrying a request reaches the
// reducer directly
var ErrNoPromiseMiddleware = errors.New("action carries a request but the store " +
	"has no promise middleware")

// Reducer folds an action into state. Reducers must not mutate the state they receive.
type Reducer[S any] func(state S, action Action) S

// Dispatcher hands an action to the store
type Dispatcher func(ctx context.Context, action Action) Response

// Middleware wraps the dispatcher of a store
type Middleware func(next Dispatcher) Dispatcher

// Store is a mutex guarded state container
type Store[S any] struct {
	mu      sync.RWMutex
	state   S
	reducer Reducer[S]

	dispatch Dispatcher

	listenerMu   sync.Mutex
	listeners    map[int]func(S)
	nextListener int
}

// New creates a store. The first middleware is the outermost one.
func New[S any](reducer Reducer[S], initial S, middleware ...Middleware) *Store[S] {
	s := &Store[S]{
		state:     initial,
		reducer:   reducer,
		listeners: make(map[int]func(S)),
	}
	dispatch := s.reduce
	for i := len(middleware) - 1; i >= 0; i-- {
		dispatch = middleware[i](dispatch)
	}
	s.dispatch = dispatch
	return s
}

// Dispatch sends an action through the middleware chain to the reducer
func (s *Store[S]) Dispatch(ctx context.Context, action Action) Response {
	return s.dispatch(ctx, action)
}

// GetState returns the current state
func (s *Store[S]) GetState() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called after every reduction
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	return func() {
		s.listenerMu.Lock()
		defer s.listenerMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store[S]) reduce(_ context.Context, action Action) Response {
	if action.Request != nil {
		return Response{Action: action, Err: ErrNoPromiseMiddleware}
	}
	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	state := s.state
	s.mu.Unlock()

	s.listenerMu.Lock()
	listeners := make([]func(S), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenerMu.Unlock()
	for _, fn := range listeners {
		fn(state)
	}
	return Response{Action: action, Data: action.Payload}
}
