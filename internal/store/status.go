/*
 * Copyright (c) YugabyteDB, Inc.
 */

package store

import (
	"context"
	"sync/atomic"
)

type statusKey struct{}

// RecordStatus reports the HTTP status a request was answered with to the Promise
// middleware resolving it. It does nothing outside of a Promise resolution.
func RecordStatus(ctx context.Context, code int) {
	if status, ok := ctx.Value(statusKey{}).(*atomic.Int64); ok {
		status.Store(int64(code))
	}
}

func withStatus(ctx context.Context) (context.Context, *atomic.Int64) {
	status := &atomic.Int64{}
	return context.WithValue(ctx, statusKey{}, status), status
}
