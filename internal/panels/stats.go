/*
 * Copyright (c) YugabyteDB, Inc.
 */

// Package panels computes what the universe dashboard panels display.
package panels

import (
	"time"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/templates"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// PanelState tells how a panel is drawn
type PanelState string

// Panel states
const (
	// PanelLoading shows a loading indicator
	PanelLoading PanelState = "loading"
	// PanelHidden renders nothing
	PanelHidden PanelState = "hidden"
	// PanelVisible renders the panel values
	PanelVisible PanelState = "visible"
)

const hoursPerDay = 24

// HighlightedStats is the summary of the customer's universes
type HighlightedStats struct {
	State         PanelState `json:"state"`
	Universes     int        `json:"universes"`
	Nodes         int64      `json:"nodes"`
	MonthlyCost   float64    `json:"monthlyCost"`
	FormattedCost string     `json:"formattedCost"`
}

// DaysInMonth of the month t falls in
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// FormatUSD renders an amount in dollars with at most two fraction digits
func FormatUSD(amount float64) string {
	return templates.USD(amount)
}

// NewHighlightedStats summarizes the universe list. The panel loads while the list
// is fetched and stays hidden unless the list resolved, possibly empty.
func NewHighlightedStats(
	universeList store.AsyncData[[]model.Universe],
	now time.Time,
) HighlightedStats {
	if universeList.IsLoading() {
		return HighlightedStats{State: PanelLoading}
	}
	if !(universeList.IsSuccess() || universeList.IsEmpty()) {
		return HighlightedStats{State: PanelHidden}
	}
	stats := HighlightedStats{State: PanelVisible, Universes: len(universeList.Data)}
	days := float64(DaysInMonth(now))
	for _, u := range universeList.Data {
		stats.Nodes += int64(u.UniverseDetails.UserIntent.NumNodes)
		stats.MonthlyCost += u.PricePerHour * hoursPerDay * days
	}
	stats.FormattedCost = FormatUSD(stats.MonthlyCost)
	return stats
}
