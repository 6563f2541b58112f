/*
 * Copyright (c) YugabyteDB, Inc.
 */

package store

// PromiseState is the lifecycle of a value fetched over the network
type PromiseState string

// Promise states
const (
	PromiseInit    PromiseState = "init"
	PromiseLoading PromiseState = "loading"
	PromiseSuccess PromiseState = "success"
	PromiseEmpty   PromiseState = "empty"
	PromiseError   PromiseState = "error"
)

// AsyncData holds a fetched value together with its promise state
type AsyncData[T any] struct {
	Data         T            `json:"data"`
	PromiseState PromiseState `json:"promiseState"`
	Error        string       `json:"error,omitempty"`
}

// IsInit is true until the first request is dispatched
func (d AsyncData[T]) IsInit() bool {
	return d.PromiseState == "" || d.PromiseState == PromiseInit
}

// IsLoading is true while the request is in flight
func (d AsyncData[T]) IsLoading() bool {
	return d.PromiseState == PromiseLoading
}

// IsSuccess is true when the request resolved with data
func (d AsyncData[T]) IsSuccess() bool {
	return d.PromiseState == PromiseSuccess
}

// IsEmpty is true when the request resolved with an empty list
func (d AsyncData[T]) IsEmpty() bool {
	return d.PromiseState == PromiseEmpty
}

// IsError is true when the request failed
func (d AsyncData[T]) IsError() bool {
	return d.PromiseState == PromiseError
}

// Init returns a value in init state
func Init[T any]() AsyncData[T] {
	return AsyncData[T]{PromiseState: PromiseInit}
}

// Loading marks prev as in flight, keeping its data
func Loading[T any](prev AsyncData[T]) AsyncData[T] {
	prev.PromiseState = PromiseLoading
	prev.Error = ""
	return prev
}

// Success wraps a resolved value
func Success[T any](data T) AsyncData[T] {
	return AsyncData[T]{Data: data, PromiseState: PromiseSuccess}
}

// List wraps a resolved list, an empty list resolves to the empty state
func List[T any](data []T) AsyncData[[]T] {
	if len(data) == 0 {
		return AsyncData[[]T]{Data: data, PromiseState: PromiseEmpty}
	}
	return AsyncData[[]T]{Data: data, PromiseState: PromiseSuccess}
}

// Failure marks prev as failed with the message of payload
func Failure[T any](prev AsyncData[T], payload interface{}) AsyncData[T] {
	prev.PromiseState = PromiseError
	prev.Error = ErrorMessage(payload)
	return prev
}
