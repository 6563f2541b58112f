/*
 * Copyright (c) YugabyteDB, Inc.
 */

// Package reducers folds console actions into the application state. Every reducer
// returns a new state and leaves the state it received untouched.
package reducers

import (
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// RootState is the whole console state
type RootState struct {
	Customer CustomerState `json:"customer"`
	Cloud    CloudState    `json:"cloud"`
	Universe UniverseState `json:"universe"`
	Tables   TablesState   `json:"tables"`
	Form     FormState     `json:"form"`
	Graph    GraphState    `json:"graph"`
	Tasks    TasksState    `json:"tasks"`
}

// InitialState of the console
func InitialState() RootState {
	return RootState{
		Customer: InitialCustomerState(),
		Cloud:    InitialCloudState(),
		Universe: InitialUniverseState(),
		Tables:   InitialTablesState(),
		Form:     InitialFormState(),
		Graph:    InitialGraphState(),
		Tasks:    InitialTasksState(),
	}
}

// Root hands the action to every slice reducer
func Root(state RootState, action store.Action) RootState {
	return RootState{
		Customer: Customer(state.Customer, action),
		Cloud:    Cloud(state.Cloud, action),
		Universe: Universe(state.Universe, action),
		Tables:   Tables(state.Tables, action),
		Form:     Form(state.Form, action),
		Graph:    Graph(state.Graph, action),
		Tasks:    Tasks(state.Tasks, action),
	}
}

// setAsync applies the request, success and failure action types of one
// network operation to an async field
func setAsync[T any](
	prev store.AsyncData[T],
	action store.Action,
	requestType, successType, failureType store.ActionType,
) (store.AsyncData[T], bool) {
	switch action.Type {
	case requestType:
		return store.Loading(prev), true
	case successType:
		if v, ok := store.PayloadAs[T](action); ok {
			return store.Success(v), true
		}
		return store.Success(prev.Data), true
	case failureType:
		return store.Failure(prev, action.Payload), true
	}
	return prev, false
}

// setAsyncList is setAsync for lists, a successful empty list is marked empty
func setAsyncList[T any](
	prev store.AsyncData[[]T],
	action store.Action,
	requestType, successType, failureType store.ActionType,
) (store.AsyncData[[]T], bool) {
	if action.Type == successType {
		v, _ := store.PayloadAs[[]T](action)
		return store.List(v), true
	}
	return setAsync(prev, action, requestType, successType, failureType)
}

// setResponse applies a request and its single response action to an async field
func setResponse[T any](
	prev store.AsyncData[T],
	action store.Action,
	requestType, responseType store.ActionType,
) (store.AsyncData[T], bool) {
	switch action.Type {
	case requestType:
		return store.Loading(prev), true
	case responseType:
		if action.Error {
			return store.Failure(prev, action.Payload), true
		}
		v, _ := store.PayloadAs[T](action)
		return store.Success(v), true
	}
	return prev, false
}
