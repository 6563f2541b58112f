/*
 * Copyright (c) YugabyteDB, Inc.
 */

package store

import (
	"context"
	"fmt"
)

// ActionType names an action
type ActionType string

// Request resolves the network call carried by an action
type Request func(ctx context.Context) (interface{}, error)

// Action describes a state change. Actions carrying a Request are resolved by the
// Promise middleware before the caller decides which follow up action to dispatch.
type Action struct {
	Type    ActionType  `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	// Error is set when Payload holds a failure
	Error bool `json:"error,omitempty"`
	// Pending is set on the copy of a request action handed to reducers
	// while the request is in flight
	Pending bool    `json:"pending,omitempty"`
	Request Request `json:"-"`
}

// Response is what Dispatch hands back to the caller
type Response struct {
	Action     Action
	Data       interface{}
	Err        error
	StatusCode int
}

// OK reports whether the request resolved successfully
func (r Response) OK() bool {
	return r.Err == nil
}

// PayloadAs returns the payload of the action when it has type T
func PayloadAs[T any](action Action) (T, bool) {
	v, ok := action.Payload.(T)
	return v, ok
}

// ErrorMessage renders a failure payload for display
func ErrorMessage(payload interface{}) string {
	switch p := payload.(type) {
	case nil:
		return ""
	case error:
		return p.Error()
	case string:
		return p
	default:
		return fmt.Sprintf("%v", p)
	}
}
