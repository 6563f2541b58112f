/*
 * Copyright (c) YugabyteDB, Inc.
 */

package containers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/reducers"
)

var periodUnits = map[string]time.Duration{
	"min":  time.Minute,
	"hour": time.Hour,
	"day":  24 * time.Hour,
	"week": 7 * 24 * time.Hour,
}

// Graph is the container of the metrics graphs
type Graph struct {
	store *Store
	api   actions.GraphAPI
}

// NewGraph creates the graph container
func NewGraph(s *Store, api actions.GraphAPI) *Graph {
	return &Graph{store: s, api: api}
}

// Props maps state to the graph props
func (c *Graph) Props() reducers.GraphState {
	return c.store.GetState().Graph
}

// ChangeGraphQueryPeriod sets the graphs to the last value units of time, unit being
// one of min, hour, day or week
func (c *Graph) ChangeGraphQueryPeriod(
	ctx context.Context,
	value string,
	unit string,
	now time.Time,
) (actions.GraphFilter, error) {
	d, ok := periodUnits[unit]
	if !ok {
		return actions.GraphFilter{}, fmt.Errorf("unknown graph period unit %q", unit)
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return actions.GraphFilter{}, fmt.Errorf("invalid graph period %q", value)
	}
	filter := actions.GraphFilter{
		FilterType:  unit,
		FilterValue: value,
		StartMoment: now.Add(-time.Duration(n) * d),
		EndMoment:   now,
	}
	c.store.Dispatch(ctx, actions.ChangeGraphQueryPeriodAction(filter))
	return filter, nil
}

// ResetGraphQueryPeriod restores the default period
func (c *Graph) ResetGraphQueryPeriod(ctx context.Context) {
	c.store.Dispatch(ctx, actions.ResetGraphQueryPeriodAction())
}

// QueryMetrics queries the metrics of a universe over the current period
func (c *Graph) QueryMetrics(
	ctx context.Context,
	uUUID string,
	metrics []string,
) (model.MetricsResponse, error) {
	filter := c.store.GetState().Graph.GraphFilter
	query := model.MetricQuery{
		Metrics:      metrics,
		Start:        filter.StartMoment.Unix(),
		End:          filter.EndMoment.Unix(),
		UniverseUUID: uUUID,
	}
	return fetch(ctx, c.store, actions.QueryMetricsRequest(c.api, query),
		actions.QueryMetricsSuccessAction, actions.QueryMetricsFailureAction)
}
