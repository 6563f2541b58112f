/*
 * Copyright (c) YugabyteDB, Inc.
 */

package metric

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

const (
	pingAction  store.ActionType = "PING_METRIC_TEST"
	fetchAction store.ActionType = "FETCH_METRIC_TEST"
)

func TestInstrumentCountsOutcomes(t *testing.T) {
	metrics := GetInstance()
	s := store.New[int](func(state int, _ store.Action) int { return state + 1 }, 0,
		metrics.Instrument, store.Promise)
	ctx := context.Background()

	s.Dispatch(ctx, store.Action{Type: pingAction})
	s.Dispatch(ctx, store.Action{Type: fetchAction,
		Request: func(context.Context) (interface{}, error) { return nil, errors.New("down") }})

	assert.Check(t, is.Equal(1.0, metrics.DispatchCount(pingAction, "success")))
	assert.Check(t, is.Equal(1.0, metrics.DispatchCount(fetchAction, "failure")))
	assert.Check(t, is.Equal(0.0, metrics.DispatchCount(fetchAction, "success")))
}

func TestHTTPHandlerExposesMetrics(t *testing.T) {
	metrics := GetInstance()
	metrics.PublishHTTPStats(time.Millisecond, http.MethodGet, "/api/state", http.StatusOK)
	assert.Check(t, metrics.HTTPCount(http.MethodGet, "/api/state", http.StatusOK) >= 1)

	rec := httptest.NewRecorder()
	metrics.HTTPHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(body), "ybaconsole_http_requests_total"))
}
