/*
 * Copyright (c) YugabyteDB, Inc.
 */

package store

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type statusCoder interface {
	HTTPStatus() int
}

// Promise resolves the Request carried by an action. Reducers first see a pending
// copy of the action, the resolved data or error is returned to the caller. The
// status code is the one recorded by the request through RecordStatus, 200 when a
// successful request recorded none.
func Promise(next Dispatcher) Dispatcher {
	return func(ctx context.Context, action Action) Response {
		if action.Request == nil {
			return next(ctx, action)
		}
		request := action.Request
		pending := action
		pending.Request = nil
		pending.Pending = true
		next(ctx, pending)

		reqCtx, status := withStatus(ctx)
		data, err := request(reqCtx)
		r := Response{Action: pending, Data: data, Err: err, StatusCode: int(status.Load())}
		if err != nil {
			r.StatusCode = statusCode(err)
		} else if r.StatusCode == 0 {
			r.StatusCode = http.StatusOK
		}
		return r
	}
}

// statusCode is the HTTP status of a failed request, 0 if it never got an answer
func statusCode(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatus()
	}
	return 0
}

// Logger traces every dispatched action at debug level
func Logger(next Dispatcher) Dispatcher {
	return func(ctx context.Context, action Action) Response {
		start := time.Now()
		r := next(ctx, action)
		entry := logrus.WithFields(logrus.Fields{
			"action":  action.Type,
			"elapsed": time.Since(start).String(),
		})
		if r.Err != nil {
			entry.Debugf("Dispatched %s: %s\n", action.Type, r.Err.Error())
		} else {
			entry.Debugf("Dispatched %s\n", action.Type)
		}
		return r
	}
}
