/*
 * Copyright (c) YugabyteDB, Inc.
 */

// Package containers connects the store to the console: each container maps state to
// the props its view renders and exposes the operations the view triggers.
package containers

import (
	"context"
	"fmt"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/reducers"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// Store is the console store
type Store = store.Store[reducers.RootState]

// fetch dispatches a request action and follows up with the success or the failure action
func fetch[T any](
	ctx context.Context,
	s *Store,
	req store.Action,
	onSuccess func(T) store.Action,
	onFailure func(error) store.Action,
) (T, error) {
	r := s.Dispatch(ctx, req)
	if r.Err != nil {
		var zero T
		s.Dispatch(ctx, onFailure(r.Err))
		return zero, r.Err
	}
	data, ok := r.Data.(T)
	if !ok {
		var zero T
		err := fmt.Errorf("unexpected %T in response to %s", r.Data, req.Type)
		s.Dispatch(ctx, onFailure(err))
		return zero, err
	}
	s.Dispatch(ctx, onSuccess(data))
	return data, nil
}

// respond dispatches a request action and follows up with its response action
func respond(
	ctx context.Context,
	s *Store,
	req store.Action,
	onResponse func(store.Response) store.Action,
) store.Response {
	r := s.Dispatch(ctx, req)
	s.Dispatch(ctx, onResponse(r))
	return r
}

// NewStore creates the console store with the given middleware
func NewStore(middleware ...store.Middleware) *Store {
	return store.New(reducers.Root, reducers.InitialState(), middleware...)
}
