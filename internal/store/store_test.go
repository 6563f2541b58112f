/*
 * Copyright (c) YugabyteDB, Inc.
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const (
	incrementAction ActionType = "INCREMENT"
	fetchAction     ActionType = "FETCH"
)

type counterState struct {
	Count   int
	Pending int
	Seen    []ActionType
}

func counterReducer(state counterState, action Action) counterState {
	seen := make([]ActionType, len(state.Seen), len(state.Seen)+1)
	copy(seen, state.Seen)
	state.Seen = append(seen, action.Type)
	switch action.Type {
	case incrementAction:
		state.Count++
	case fetchAction:
		if action.Pending {
			state.Pending++
		}
	}
	return state
}

type httpError struct{ status int }

func (e httpError) Error() string   { return fmt.Sprintf("status %d", e.status) }
func (e httpError) HTTPStatus() int { return e.status }

func TestDispatchReducesState(t *testing.T) {
	s := New(counterReducer, counterState{})
	ctx := context.Background()

	s.Dispatch(ctx, Action{Type: incrementAction})
	s.Dispatch(ctx, Action{Type: incrementAction})

	assert.Check(t, is.Equal(2, s.GetState().Count))
}

func TestRequestWithoutPromiseMiddleware(t *testing.T) {
	s := New(counterReducer, counterState{})
	r := s.Dispatch(context.Background(), Action{
		Type: fetchAction,
		Request: func(context.Context) (interface{}, error) {
			return nil, nil
		},
	})
	assert.Check(t, errors.Is(r.Err, ErrNoPromiseMiddleware))
	assert.Check(t, is.Len(s.GetState().Seen, 0))
}

func TestPromiseMiddleware(t *testing.T) {
	s := New(counterReducer, counterState{}, Promise)
	ctx := context.Background()

	r := s.Dispatch(ctx, Action{
		Type: fetchAction,
		Request: func(context.Context) (interface{}, error) {
			return []string{"a"}, nil
		},
	})
	assert.NilError(t, r.Err)
	assert.Check(t, r.OK())
	assert.Check(t, is.Equal(http.StatusOK, r.StatusCode))
	assert.Check(t, is.DeepEqual([]string{"a"}, r.Data))
	assert.Check(t, is.Equal(1, s.GetState().Pending))

	r = s.Dispatch(ctx, Action{
		Type: fetchAction,
		Request: func(context.Context) (interface{}, error) {
			return nil, fmt.Errorf("wrapped: %w", httpError{status: http.StatusNotFound})
		},
	})
	assert.Check(t, !r.OK())
	assert.Check(t, is.Equal(http.StatusNotFound, r.StatusCode))

	r = s.Dispatch(ctx, Action{
		Type: fetchAction,
		Request: func(context.Context) (interface{}, error) {
			return nil, errors.New("connection refused")
		},
	})
	assert.Check(t, is.Equal(0, r.StatusCode))
	assert.Check(t, is.Equal(3, s.GetState().Pending))
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	trace := func(name string) Middleware {
		return func(next Dispatcher) Dispatcher {
			return func(ctx context.Context, action Action) Response {
				order = append(order, name)
				return next(ctx, action)
			}
		}
	}
	s := New(counterReducer, counterState{}, trace("outer"), trace("inner"), Logger)
	s.Dispatch(context.Background(), Action{Type: incrementAction})
	assert.Check(t, is.DeepEqual([]string{"outer", "inner"}, order))
}

func TestSubscribe(t *testing.T) {
	s := New(counterReducer, counterState{})
	ctx := context.Background()

	var seen []int
	unsubscribe := s.Subscribe(func(state counterState) {
		seen = append(seen, state.Count)
	})
	s.Dispatch(ctx, Action{Type: incrementAction})
	s.Dispatch(ctx, Action{Type: incrementAction})
	unsubscribe()
	s.Dispatch(ctx, Action{Type: incrementAction})

	assert.Check(t, is.DeepEqual([]int{1, 2}, seen))
	assert.Check(t, is.Equal(3, s.GetState().Count))
}

func TestConcurrentDispatch(t *testing.T) {
	s := New(counterReducer, counterState{}, Promise)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(ctx, Action{Type: incrementAction})
		}()
	}
	wg.Wait()
	assert.Check(t, is.Equal(50, s.GetState().Count))
}

func TestAsyncData(t *testing.T) {
	d := Init[[]string]()
	assert.Check(t, d.IsInit())

	d = Loading(d)
	assert.Check(t, d.IsLoading())

	d = List([]string{})
	assert.Check(t, d.IsEmpty())

	d = List([]string{"x"})
	assert.Check(t, d.IsSuccess())

	d = Failure(d, errors.New("boom"))
	assert.Check(t, d.IsError())
	assert.Check(t, is.Equal("boom", d.Error))
	assert.Check(t, is.DeepEqual([]string{"x"}, d.Data))

	d = Loading(d)
	assert.Check(t, is.Equal("", d.Error))
}

func TestPromiseRecordedStatus(t *testing.T) {
	s := New(counterReducer, counterState{}, Promise)

	r := s.Dispatch(context.Background(), Action{
		Type: fetchAction,
		Request: func(ctx context.Context) (interface{}, error) {
			RecordStatus(ctx, http.StatusAccepted)
			return "queued", nil
		},
	})
	assert.NilError(t, r.Err)
	assert.Check(t, is.Equal(http.StatusAccepted, r.StatusCode))

	// outside of a promise there is nothing to record into
	RecordStatus(context.Background(), http.StatusAccepted)
}
