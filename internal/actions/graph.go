/*
 * Copyright (c) YugabyteDB, Inc.
 */

package actions

import (
	"context"
	"time"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// Graph action types
const (
	ChangeGraphQueryPeriod store.ActionType = "CHANGE_GRAPH_QUERY_PERIOD"
	ResetGraphQueryPeriod  store.ActionType = "RESET_GRAPH_QUERY_PERIOD"
	QueryMetrics           store.ActionType = "QUERY_METRICS"
	QueryMetricsSuccess    store.ActionType = "QUERY_METRICS_SUCCESS"
	QueryMetricsFailure    store.ActionType = "QUERY_METRICS_FAILURE"
)

// GraphFilter is the period the graphs are queried for
type GraphFilter struct {
	FilterType  string    `json:"filterType"`
	FilterValue string    `json:"filterValue"`
	StartMoment time.Time `json:"startMoment"`
	EndMoment   time.Time `json:"endMoment"`
}

// ChangeGraphQueryPeriodAction sets the graph period
func ChangeGraphQueryPeriodAction(filter GraphFilter) store.Action {
	return success(ChangeGraphQueryPeriod, filter)
}

// ResetGraphQueryPeriodAction restores the default graph period
func ResetGraphQueryPeriodAction() store.Action {
	return store.Action{Type: ResetGraphQueryPeriod}
}

// QueryMetricsRequest runs a metrics query
func QueryMetricsRequest(api GraphAPI, query model.MetricQuery) store.Action {
	return request(QueryMetrics, func(ctx context.Context) (interface{}, error) {
		return api.QueryMetrics(ctx, query)
	})
}

// QueryMetricsSuccessAction carries the metrics
func QueryMetricsSuccessAction(metrics model.MetricsResponse) store.Action {
	return success(QueryMetricsSuccess, metrics)
}

// QueryMetricsFailureAction carries the metrics error
func QueryMetricsFailureAction(err error) store.Action {
	return failure(QueryMetricsFailure, err)
}
