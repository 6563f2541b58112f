/*
 * Copyright (c) YugabyteDB, Inc.
 */

package reducers

import (
	"time"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

var now = time.Now

// GraphState holds the graph period and the last metrics query
type GraphState struct {
	GraphFilter actions.GraphFilter                    `json:"graphFilter"`
	Metrics     store.AsyncData[model.MetricsResponse] `json:"metrics"`
}

// DefaultGraphFilter is the last hour
func DefaultGraphFilter() actions.GraphFilter {
	end := now()
	return actions.GraphFilter{
		FilterType:  "hour",
		FilterValue: "1",
		StartMoment: end.Add(-time.Hour),
		EndMoment:   end,
	}
}

// InitialGraphState shows the last hour
func InitialGraphState() GraphState {
	return GraphState{
		GraphFilter: DefaultGraphFilter(),
		Metrics:     store.Init[model.MetricsResponse](),
	}
}

// Graph reduces graph actions
func Graph(state GraphState, action store.Action) GraphState {
	switch action.Type {
	case actions.ChangeGraphQueryPeriod:
		if filter, ok := store.PayloadAs[actions.GraphFilter](action); ok {
			state.GraphFilter = filter
		}
		return state
	case actions.ResetGraphQueryPeriod:
		state.GraphFilter = DefaultGraphFilter()
		return state
	}
	state.Metrics, _ = setAsync(state.Metrics, action,
		actions.QueryMetrics, actions.QueryMetricsSuccess, actions.QueryMetricsFailure)
	return state
}
