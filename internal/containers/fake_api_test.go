/*
 * Copyright (c) YugabyteDB, Inc.
 */

package containers

import (
	"context"
	"sync"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

type statusErr struct {
	status int
	msg    string
}

func (e statusErr) Error() string   { return e.msg }
func (e statusErr) HTTPStatus() int { return e.status }

// fakeAPI answers every platform call from its fields and records the calls made
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	tables      []model.Table
	detail      model.TableDetail
	columnTypes model.ColumnTypes
	task        model.TaskResponse
	taskErr     error

	providers            []model.Provider
	regions              []model.Region
	deleteProviderErr    error
	deleteProviderStatus int

	universes   []model.Universe
	versions    []string
	upgradeErr  error
	lastUpgrade model.RollingUpgradePayload

	statuses  []model.TaskStatus
	statusIdx int
	tasks     []model.CustomerTask

	session    model.SessionInfo
	metrics    model.MetricsResponse
	lastQuery  model.MetricQuery
	lastBackup model.BackupParams
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func newTestStore() *Store {
	return NewStore(store.Promise)
}

func (f *fakeAPI) ListTables(context.Context, string) ([]model.Table, error) {
	f.record("ListTables")
	return f.tables, nil
}

func (f *fakeAPI) DescribeTable(context.Context, string, string) (model.TableDetail, error) {
	f.record("DescribeTable")
	return f.detail, nil
}

func (f *fakeAPI) CreateTable(
	context.Context, string, model.TableDefinition,
) (model.TaskResponse, error) {
	f.record("CreateTable")
	return f.task, f.taskErr
}

func (f *fakeAPI) DropTable(context.Context, string, string) (model.TaskResponse, error) {
	f.record("DropTable")
	return f.task, f.taskErr
}

func (f *fakeAPI) BulkImport(
	context.Context, string, string, model.BulkImportParams,
) (model.TaskResponse, error) {
	f.record("BulkImport")
	return f.task, f.taskErr
}

func (f *fakeAPI) CreateTableBackup(
	_ context.Context, _, _ string, req model.BackupParams,
) (model.TaskResponse, error) {
	f.record("CreateTableBackup")
	f.lastBackup = req
	return f.task, f.taskErr
}

func (f *fakeAPI) RestoreBackup(
	context.Context, string, string, model.RestoreParams,
) (model.TaskResponse, error) {
	f.record("RestoreBackup")
	return f.task, f.taskErr
}

func (f *fakeAPI) ColumnTypes(context.Context) (model.ColumnTypes, error) {
	f.record("ColumnTypes")
	return f.columnTypes, nil
}

func (f *fakeAPI) ListProviders(context.Context) ([]model.Provider, error) {
	f.record("ListProviders")
	return f.providers, nil
}

func (f *fakeAPI) ListRegions(context.Context) ([]model.Region, error) {
	f.record("ListRegions")
	return f.regions, nil
}

func (f *fakeAPI) DeleteProvider(ctx context.Context, _ string) (model.TaskResponse, error) {
	f.record("DeleteProvider")
	if f.deleteProviderStatus != 0 {
		store.RecordStatus(ctx, f.deleteProviderStatus)
	}
	return f.task, f.deleteProviderErr
}

func (f *fakeAPI) ListUniverses(context.Context) ([]model.Universe, error) {
	f.record("ListUniverses")
	return f.universes, nil
}

func (f *fakeAPI) GetUniverse(_ context.Context, uUUID string) (model.Universe, error) {
	f.record("GetUniverse")
	for _, u := range f.universes {
		if u.UniverseUUID == uUUID {
			return u, nil
		}
	}
	return model.Universe{}, statusErr{status: 400, msg: "Invalid Universe UUID: " + uUUID}
}

func (f *fakeAPI) RollingUpgrade(
	_ context.Context, _ string, payload model.RollingUpgradePayload,
) (model.TaskResponse, error) {
	f.record("RollingUpgrade")
	f.lastUpgrade = payload
	return f.task, f.upgradeErr
}

func (f *fakeAPI) SoftwareVersions(context.Context) ([]string, error) {
	f.record("SoftwareVersions")
	return f.versions, nil
}

func (f *fakeAPI) TaskStatus(context.Context, string) (model.TaskStatus, error) {
	f.record("TaskStatus")
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.statuses[f.statusIdx]
	if f.statusIdx < len(f.statuses)-1 {
		f.statusIdx++
	}
	return s, nil
}

func (f *fakeAPI) ListTasks(context.Context) ([]model.CustomerTask, error) {
	f.record("ListTasks")
	return f.tasks, nil
}

func (f *fakeAPI) SessionInfo(context.Context) (model.SessionInfo, error) {
	f.record("SessionInfo")
	return f.session, nil
}

func (f *fakeAPI) QueryMetrics(
	_ context.Context, query model.MetricQuery,
) (model.MetricsResponse, error) {
	f.record("QueryMetrics")
	f.lastQuery = query
	return f.metrics, nil
}
