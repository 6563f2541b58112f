/*
 * Copyright (c) YugabyteDB, Inc.
 */

package panels

import (
	"errors"
	"testing"
	"time"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func universe(uuid string, nodes int32, pricePerHour float64) model.Universe {
	return model.Universe{
		UniverseUUID: uuid,
		PricePerHour: pricePerHour,
		UniverseDetails: model.UniverseDetails{
			UserIntent: model.UserIntent{NumNodes: nodes, ReplicationFactor: 3},
		},
	}
}

func TestHighlightedStats(t *testing.T) {
	april := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	list := store.List([]model.Universe{universe("u-1", 3, 1), universe("u-2", 5, 0.5)})

	stats := NewHighlightedStats(list, april)
	assert.Check(t, is.Equal(PanelVisible, stats.State))
	assert.Check(t, is.Equal(2, stats.Universes))
	assert.Check(t, is.Equal(int64(8), stats.Nodes))
	assert.Check(t, is.Equal(1080.0, stats.MonthlyCost))
	assert.Check(t, is.Equal("$1,080.00", stats.FormattedCost))
}

func TestHighlightedStatsStates(t *testing.T) {
	now := time.Now()
	loading := store.Loading(store.Init[[]model.Universe]())
	assert.Check(t, is.Equal(PanelLoading, NewHighlightedStats(loading, now).State))

	failed := store.Failure(store.Init[[]model.Universe](), errors.New("boom"))
	assert.Check(t, is.Equal(PanelHidden, NewHighlightedStats(failed, now).State))
	assert.Check(t, is.Equal(PanelHidden,
		NewHighlightedStats(store.Init[[]model.Universe](), now).State))

	empty := NewHighlightedStats(store.List([]model.Universe{}), now)
	assert.Check(t, is.Equal(PanelVisible, empty.State))
	assert.Check(t, is.Equal("$0.00", empty.FormattedCost))
}

func TestDaysInMonth(t *testing.T) {
	assert.Check(t, is.Equal(29, DaysInMonth(time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC))))
	assert.Check(t, is.Equal(28, DaysInMonth(time.Date(2023, 2, 3, 0, 0, 0, 0, time.UTC))))
	assert.Check(t, is.Equal(31, DaysInMonth(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))))
}

func TestConnectString(t *testing.T) {
	items := ConnectString(universe("u-1", 3, 0), "c-1", "http://yba:9000/api/v1")
	endpoint := "http://yba:9000/api/v1/customers/c-1/universes/u-1/masters"
	assert.Check(t, is.DeepEqual([]DescriptionItem{
		{Name: "Nodes", Data: "3"},
		{Name: "Replication Factor", Data: "3"},
		{Name: "Meta Masters", Data: endpoint},
		{Name: "Load Test", Data: "yb_load_test_tool --load_test_master_endpoint " + endpoint,
			Code: true},
	}, items))
}
