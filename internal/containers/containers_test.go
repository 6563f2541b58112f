/*
 * Copyright (c) YugabyteDB, Inc.
 */

package containers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/upgrade"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func testUniverse() model.Universe {
	return model.Universe{
		UniverseUUID: "u-1",
		Name:         "orders",
		PricePerHour: 1.5,
		UniverseDetails: model.UniverseDetails{
			UserIntent: model.UserIntent{NumNodes: 3, ReplicationFactor: 3},
		},
	}
}

func TestFetchUniverseTables(t *testing.T) {
	api := &fakeAPI{tables: []model.Table{{TableUUID: "t-1", TableName: "orders"}}}
	c := NewTables(newTestStore(), api)

	tables, err := c.FetchUniverseTables(context.Background(), "u-1")
	assert.NilError(t, err)
	assert.Check(t, is.Len(tables, 1))
	props := c.Props()
	assert.Check(t, props.Tables.UniverseTablesList.IsSuccess())
	assert.Check(t, is.Equal("orders", props.Tables.UniverseTablesList.Data[0].TableName))
}

func TestTableOperationsStoreResponses(t *testing.T) {
	api := &fakeAPI{task: model.TaskResponse{TaskUUID: "task-1"}}
	c := NewTables(newTestStore(), api)
	ctx := context.Background()

	task, err := c.CreateTableBackup(ctx, "u-1", "t-1", model.BackupParams{Keyspace: "shop"})
	assert.NilError(t, err)
	assert.Check(t, is.Equal("task-1", task.TaskUUID))
	assert.Check(t, is.Equal(model.CreateBackupAction, api.lastBackup.ActionType))
	assert.Check(t, c.Props().Tables.CreateBackup.IsSuccess())

	api.taskErr = errors.New("table is being dropped")
	_, err = c.DropTable(ctx, "u-1", "t-1")
	assert.ErrorContains(t, err, "table is being dropped")
	assert.Check(t, c.Props().Tables.DropTable.IsError())
	assert.Check(t, is.Equal("table is being dropped", c.Props().Tables.DropTable.Error))
}

func TestDeleteProviderConfigRefetchesMetadata(t *testing.T) {
	api := &fakeAPI{
		providers: []model.Provider{{UUID: "p-2", Name: "k8s"}},
		regions:   []model.Region{{UUID: "r-1", Code: "us-west1"}},
	}
	c := NewCloud(newTestStore(), api)

	assert.NilError(t, c.DeleteProviderConfig(context.Background(), "p-1"))
	assert.Check(t, is.DeepEqual(
		[]string{"DeleteProvider", "ListProviders", "ListRegions"}, api.called()))
	props := c.Props()
	assert.Check(t, props.Providers.IsSuccess())
	assert.Check(t, is.Len(props.Regions.Data, 1))
}

func TestDeleteProviderConfigFailure(t *testing.T) {
	api := &fakeAPI{deleteProviderErr: statusErr{status: 500, msg: "Provider in use"}}
	s := newTestStore()
	c := NewCloud(s, api)

	err := c.DeleteProviderConfig(context.Background(), "p-1")
	assert.ErrorContains(t, err, "Provider in use")
	assert.Check(t, is.DeepEqual([]string{"DeleteProvider"}, api.called()))
	assert.Check(t, s.GetState().Cloud.DeleteProvider.IsError())
	assert.Check(t, s.GetState().Cloud.Providers.IsInit())
}

func TestDeleteProviderConfigNotOK(t *testing.T) {
	api := &fakeAPI{deleteProviderStatus: http.StatusAccepted}
	s := newTestStore()
	c := NewCloud(s, api)

	err := c.DeleteProviderConfig(context.Background(), "p-1")
	assert.ErrorContains(t, err, "returned status 202")
	assert.Check(t, is.DeepEqual([]string{"DeleteProvider"}, api.called()))
	assert.Check(t, s.GetState().Cloud.DeleteProvider.IsError())
	assert.Check(t, s.GetState().Cloud.Providers.IsInit())
}

func TestSubmitRollingUpgrade(t *testing.T) {
	api := &fakeAPI{
		universes: []model.Universe{testUniverse()},
		task:      model.TaskResponse{TaskUUID: "task-9"},
	}
	c := NewUniverse(newTestStore(), api)
	ctx := context.Background()

	_, err := c.FetchUniverseInfo(ctx, "u-1")
	assert.NilError(t, err)
	c.ShowModal(ctx, upgrade.GFlagsModal)
	c.MountUpgradeForm(ctx)

	props := c.Props()
	assert.Check(t, is.Equal("GFlags", props.FormTitle))
	assert.Check(t, is.DeepEqual([]upgrade.FlagRow{{}}, props.UpgradeForm.MasterGFlags))

	assert.NilError(t, c.ChangeUpgradeField(ctx, "tserverGFlags[0].name", "log_level"))
	assert.NilError(t, c.ChangeUpgradeField(ctx, "tserverGFlags[0].value", "2"))
	assert.NilError(t, c.ChangeUpgradeField(ctx, upgrade.TimeDelayField, "10"))
	assert.NilError(t, c.AddFlagRow(ctx, upgrade.TServerGFlagsField))
	assert.ErrorContains(t, c.RemoveFlagRow(ctx, upgrade.MasterGFlagsField, 5), "has no row 5")

	assert.NilError(t, c.UpgradeForm(ctx).HandleSubmit(ctx))

	assert.Check(t, is.Equal(upgrade.GFlagsTaskType, api.lastUpgrade.TaskType))
	assert.Check(t, is.DeepEqual([]model.GFlag{{Name: "log_level", Value: "2"}},
		api.lastUpgrade.TserverGFlags))
	assert.Check(t, is.Len(api.lastUpgrade.MasterGFlags, 0))
	assert.Check(t, is.Equal(int64(10000), api.lastUpgrade.SleepAfterMasterRestartMillis))

	props = c.Props()
	assert.Check(t, is.Equal("", props.Universe.VisibleModal))
	assert.Check(t, is.Equal("task-9", c.LastUpgrade().TaskUUID))
	assert.Check(t, is.DeepEqual(upgrade.Values{}, props.UpgradeForm))
}

func TestSubmitRollingUpgradeFailureKeepsModal(t *testing.T) {
	api := &fakeAPI{
		universes:  []model.Universe{testUniverse()},
		upgradeErr: statusErr{status: 400, msg: "Universe is already being updated"},
	}
	c := NewUniverse(newTestStore(), api)
	ctx := context.Background()

	_, err := c.FetchUniverseInfo(ctx, "u-1")
	assert.NilError(t, err)
	c.ShowModal(ctx, upgrade.SoftwareUpgradesModal)
	c.MountUpgradeForm(ctx)
	assert.NilError(t, c.ChangeUpgradeField(ctx, upgrade.SoftwareVersionField, "2.1.0.0-b1"))

	err = c.UpgradeForm(ctx).HandleSubmit(ctx)
	assert.ErrorContains(t, err, "already being updated")

	props := c.Props()
	assert.Check(t, is.Equal(upgrade.SoftwareUpgradesModal, props.Universe.VisibleModal))
	assert.Check(t, is.Equal("Universe is already being updated", props.Universe.Error))
	assert.Check(t, is.Equal("2.1.0.0-b1", props.UpgradeForm.YBSoftwareVersion))

	c.CloseUpgradeForm(ctx)
	props = c.Props()
	assert.Check(t, is.Equal("", props.Universe.Error))
	assert.Check(t, is.Equal("", props.UpgradeForm.YBSoftwareVersion))
}

func TestSetFlagRows(t *testing.T) {
	c := NewUniverse(newTestStore(), &fakeAPI{})
	ctx := context.Background()
	c.MountUpgradeForm(ctx)

	rows := []upgrade.FlagRow{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}
	assert.NilError(t, c.SetFlagRows(ctx, upgrade.MasterGFlagsField, rows))
	assert.Check(t, is.DeepEqual(rows, c.Props().UpgradeForm.MasterGFlags))

	assert.NilError(t, c.SetFlagRows(ctx, upgrade.MasterGFlagsField, rows[1:]))
	assert.Check(t, is.DeepEqual(rows[1:], c.Props().UpgradeForm.MasterGFlags))

	assert.ErrorContains(t, c.SetFlagRows(ctx, "flags", rows), "flags")
}

func TestEditFlagRowsKeepsUniverseFlags(t *testing.T) {
	u := testUniverse()
	u.UniverseDetails.UserIntent.MasterGFlags = map[string]string{"log_level": "2", "vmodule": "1"}
	u.UniverseDetails.UserIntent.TserverGFlags = map[string]string{"ysql_enable_auth": "true"}
	api := &fakeAPI{universes: []model.Universe{u}, task: model.TaskResponse{TaskUUID: "task-3"}}
	c := NewUniverse(newTestStore(), api)
	ctx := context.Background()

	c.ShowModal(ctx, upgrade.GFlagsModal)
	c.InitializeUpgradeForm(ctx, u)
	c.MountUpgradeForm(ctx)
	assert.NilError(t, c.EditFlagRows(ctx, upgrade.MasterGFlagsField,
		upgrade.ParseFlagRows("vmodule=,max_log_size=256")))
	assert.NilError(t, c.EditFlagRows(ctx, upgrade.TServerGFlagsField, nil))

	assert.NilError(t, c.UpgradeFormOf(ctx, u).HandleSubmit(ctx))
	assert.Check(t, is.DeepEqual([]model.GFlag{
		{Name: "log_level", Value: "2"},
		{Name: "max_log_size", Value: "256"},
	}, api.lastUpgrade.MasterGFlags))
	assert.Check(t, is.DeepEqual([]model.GFlag{{Name: "ysql_enable_auth", Value: "true"}},
		api.lastUpgrade.TserverGFlags))
	assert.Check(t, is.Equal("u-1", api.lastUpgrade.UniverseUUID))

	// a reset goes back to the universe flags
	assert.Check(t, is.Len(c.Props().UpgradeForm.MasterGFlags, 2))
	assert.Check(t, is.Equal("vmodule", c.Props().UpgradeForm.MasterGFlags[1].Name))
}

func TestSubmitWithoutModalSendsNothing(t *testing.T) {
	api := &fakeAPI{universes: []model.Universe{testUniverse()}}
	c := NewUniverse(newTestStore(), api)
	ctx := context.Background()

	err := c.UpgradeForm(ctx).HandleSubmit(ctx)
	assert.ErrorIs(t, err, upgrade.ErrNoUpgradeModal)
	assert.Check(t, is.Len(api.called(), 0))
}

func TestWaitForTask(t *testing.T) {
	api := &fakeAPI{statuses: []model.TaskStatus{
		{Status: model.RunningTaskStatus, Percent: 10},
		{Status: model.RunningTaskStatus, Percent: 60},
		{Status: model.SuccessTaskStatus, Percent: 100},
	}}
	c := NewTasks(newTestStore(), api)
	c.PollInterval = time.Millisecond

	seen := 0
	status, err := c.WaitForTask(context.Background(), "task-1", time.Second,
		func(model.TaskStatus) { seen++ })
	assert.NilError(t, err)
	assert.Check(t, is.Equal(model.SuccessTaskStatus, status.Status))
	assert.Check(t, is.Equal(3, seen))
	assert.Check(t, c.Props().TaskProgressData["task-1"].IsSuccess())
}

func TestWaitForFailedTask(t *testing.T) {
	api := &fakeAPI{statuses: []model.TaskStatus{{Status: model.FailureTaskStatus}}}
	c := NewTasks(newTestStore(), api)
	c.PollInterval = time.Millisecond

	_, err := c.WaitForTask(context.Background(), "task-1", time.Second, nil)
	assert.ErrorContains(t, err, "operation failed with state: Failure")
}

func TestWaitForTaskTimeout(t *testing.T) {
	api := &fakeAPI{statuses: []model.TaskStatus{{Status: model.RunningTaskStatus}}}
	c := NewTasks(newTestStore(), api)
	c.PollInterval = 20 * time.Millisecond

	_, err := c.WaitForTask(context.Background(), "task-1", 50*time.Millisecond, nil)
	assert.ErrorIs(t, err, ErrTaskTimeout)
}

func TestFetchCustomer(t *testing.T) {
	api := &fakeAPI{session: model.SessionInfo{CustomerUUID: "c-1"}}
	c := NewCustomer(newTestStore(), api)

	_, err := c.FetchCustomer(context.Background())
	assert.NilError(t, err)
	assert.Check(t, is.Equal("c-1", c.Props().CustomerUUID))
}

func TestGraphQueryUsesPeriod(t *testing.T) {
	api := &fakeAPI{metrics: model.MetricsResponse{"cpu_usage": []interface{}{}}}
	c := NewGraph(newTestStore(), api)
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := c.ChangeGraphQueryPeriod(ctx, "6", "hour", now)
	assert.NilError(t, err)
	_, err = c.ChangeGraphQueryPeriod(ctx, "6", "fortnight", now)
	assert.ErrorContains(t, err, "unknown graph period unit")

	_, err = c.QueryMetrics(ctx, "u-1", []string{"cpu_usage"})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(now.Add(-6*time.Hour).Unix(), api.lastQuery.Start))
	assert.Check(t, is.Equal(now.Unix(), api.lastQuery.End))
	assert.Check(t, c.Props().Metrics.IsSuccess())
	assert.Check(t, is.Equal("hour", c.Props().GraphFilter.FilterType))
}
