/*
 * Copyright (c) YugabyteDB, Inc.
 */

package client

import (
	"context"
	"net/http"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

// QueryMetrics runs a metrics query for the graph panels
func (a *AuthAPIClient) QueryMetrics(
	ctx context.Context,
	query model.MetricQuery,
) (model.MetricsResponse, error) {
	params, err := newRestAPIParameters(http.MethodPost, "metrics",
		"Metrics", "Query", true, query)
	if err != nil {
		return nil, err
	}
	r := model.MetricsResponse{}
	err = a.restJSON(ctx, params, &r)
	return r, err
}
