/*
 * Copyright (c) YugabyteDB, Inc.
 */

package model

// SessionInfo identifies the customer and user owning the API token
type SessionInfo struct {
	CustomerUUID string `json:"customerUUID"`
	UserUUID     string `json:"userUUID,omitempty"`
	APIToken     string `json:"apiToken,omitempty"`
}

// MetricQuery is the request body of a metrics query
type MetricQuery struct {
	Metrics      []string `json:"metrics"`
	Start        int64    `json:"start"`
	End          int64    `json:"end,omitempty"`
	NodePrefix   string   `json:"nodePrefix,omitempty"`
	UniverseUUID string   `json:"universeUUID,omitempty"`
}

// MetricsResponse maps a metric name to its raw series
type MetricsResponse map[string]interface{}
