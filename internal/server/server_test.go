/*
 * Copyright (c) YugabyteDB, Inc.
 */

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/containers"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/panels"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/reducers"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/upgrade"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

type platformError struct{ status int }

func (e platformError) Error() string   { return "platform failure" }
func (e platformError) HTTPStatus() int { return e.status }

type fakePlatform struct {
	universes      []model.Universe
	tables         []model.Table
	deleteErr      error
	upgradePayload model.RollingUpgradePayload

	mu       sync.Mutex
	upgrades []string
}

func (f *fakePlatform) sentUpgrades() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.upgrades...)
}

func (f *fakePlatform) ListTables(context.Context, string) ([]model.Table, error) {
	return f.tables, nil
}

func (f *fakePlatform) DescribeTable(context.Context, string, string) (model.TableDetail, error) {
	return model.TableDetail{}, nil
}

func (f *fakePlatform) CreateTable(
	context.Context, string, model.TableDefinition,
) (model.TaskResponse, error) {
	return model.TaskResponse{}, nil
}

func (f *fakePlatform) DropTable(context.Context, string, string) (model.TaskResponse, error) {
	return model.TaskResponse{}, nil
}

func (f *fakePlatform) BulkImport(
	context.Context, string, string, model.BulkImportParams,
) (model.TaskResponse, error) {
	return model.TaskResponse{}, nil
}

func (f *fakePlatform) CreateTableBackup(
	context.Context, string, string, model.BackupParams,
) (model.TaskResponse, error) {
	return model.TaskResponse{}, nil
}

func (f *fakePlatform) RestoreBackup(
	context.Context, string, string, model.RestoreParams,
) (model.TaskResponse, error) {
	return model.TaskResponse{}, nil
}

func (f *fakePlatform) ColumnTypes(context.Context) (model.ColumnTypes, error) {
	return model.ColumnTypes{Primitives: []string{"INT"}, Collections: []string{"MAP"}}, nil
}

func (f *fakePlatform) ListProviders(context.Context) ([]model.Provider, error) {
	return []model.Provider{{UUID: "p-1", Name: "aws", Code: "aws"}}, nil
}

func (f *fakePlatform) ListRegions(context.Context) ([]model.Region, error) {
	return []model.Region{{UUID: "r-1", Code: "us-west-2"}}, nil
}

func (f *fakePlatform) DeleteProvider(context.Context, string) (model.TaskResponse, error) {
	if f.deleteErr != nil {
		return model.TaskResponse{}, f.deleteErr
	}
	return model.TaskResponse{TaskUUID: "task-delete"}, nil
}

func (f *fakePlatform) ListUniverses(context.Context) ([]model.Universe, error) {
	return f.universes, nil
}

func (f *fakePlatform) GetUniverse(_ context.Context, uUUID string) (model.Universe, error) {
	for _, u := range f.universes {
		if u.UniverseUUID == uUUID {
			return u, nil
		}
	}
	return model.Universe{}, platformError{status: http.StatusBadRequest}
}

func (f *fakePlatform) RollingUpgrade(
	_ context.Context, uUUID string, payload model.RollingUpgradePayload,
) (model.TaskResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upgradePayload = payload
	f.upgrades = append(f.upgrades, uUUID+"/"+payload.UniverseUUID)
	return model.TaskResponse{TaskUUID: "task-upgrade", ResourceUUID: payload.UniverseUUID}, nil
}

func (f *fakePlatform) SoftwareVersions(context.Context) ([]string, error) {
	return []string{"2.20.1.0-b97"}, nil
}

func (f *fakePlatform) TaskStatus(context.Context, string) (model.TaskStatus, error) {
	return model.TaskStatus{Status: model.SuccessTaskStatus, Percent: 100}, nil
}

func (f *fakePlatform) ListTasks(context.Context) ([]model.CustomerTask, error) {
	return []model.CustomerTask{{ID: "task-upgrade", Status: model.RunningTaskStatus}}, nil
}

func (f *fakePlatform) SessionInfo(context.Context) (model.SessionInfo, error) {
	return model.SessionInfo{CustomerUUID: "c-1"}, nil
}

func (f *fakePlatform) QueryMetrics(
	_ context.Context, query model.MetricQuery,
) (model.MetricsResponse, error) {
	return model.MetricsResponse{"metrics": query.Metrics}, nil
}

func newTestServer(t *testing.T) (*Server, *fakePlatform) {
	t.Helper()
	api := &fakePlatform{
		universes: []model.Universe{{
			UniverseUUID: "u-1",
			Name:         "prod",
			PricePerHour: 0.5,
			UniverseDetails: model.UniverseDetails{
				UserIntent: model.UserIntent{
					NumNodes:          3,
					ReplicationFactor: 3,
					YBSoftwareVersion: "2.18.0.0-b1",
				},
			},
		}},
		tables: []model.Table{{TableUUID: "t-1", TableName: "orders"}},
	}
	srv := New(Config{RootURL: "http://yba:9000/api/v1", CustomerUUID: "c-1"}, api,
		containers.NewStore(store.Promise))
	srv.now = func() time.Time { return time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC) }
	return srv, api
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestGetUniverseStats(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/universes/stats", "")
	assert.Equal(t, rec.Code, http.StatusOK)

	var stats panels.HighlightedStats
	assert.NilError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, stats.State, panels.PanelVisible)
	assert.Equal(t, stats.Universes, 1)
	assert.Equal(t, stats.Nodes, int64(3))
	// 0.5 per hour over the 29 days of February 2024
	assert.Equal(t, stats.FormattedCost, "$348.00")
}

func TestGetConnect(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/universes/u-1/connect", "")
	assert.Equal(t, rec.Code, http.StatusOK)

	var items []panels.DescriptionItem
	assert.NilError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Assert(t, is.Len(items, 4))
	assert.Equal(t, items[2].Data, "http://yba:9000/api/v1/customers/c-1/universes/u-1/masters")
}

func TestGetUnknownUniverseKeepsPlatformStatus(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/universes/u-404", "")
	assert.Equal(t, rec.Code, http.StatusBadRequest)
	assert.Assert(t, is.Contains(rec.Body.String(), "platform failure"))

	state := srv.store.GetState()
	assert.Check(t, state.Universe.CurrentUniverse.IsError())
}

func TestGetTablesAndColumnTypes(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/universes/u-1/tables", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Assert(t, is.Contains(rec.Body.String(), `"tableName":"orders"`))

	rec = do(t, srv, http.MethodGet, "/api/metadata/column_types", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Assert(t, is.Contains(rec.Body.String(), `"collections":["MAP"]`))
}

func TestDeleteProvider(t *testing.T) {
	srv, api := newTestServer(t)
	rec := do(t, srv, http.MethodDelete, "/api/providers/p-1", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Assert(t, is.Contains(rec.Body.String(), `"uuid":"p-1"`))

	api.deleteErr = platformError{status: http.StatusForbidden}
	rec = do(t, srv, http.MethodDelete, "/api/providers/p-1", "")
	assert.Equal(t, rec.Code, http.StatusForbidden)
}

func TestPostGFlagsUpgrade(t *testing.T) {
	srv, api := newTestServer(t)
	body := `{"modal":"gFlagsModal","timeDelay":30,` +
		`"masterGFlags":[{"name":"max_log_size","value":"256"},{"name":"","value":""}],` +
		`"tserverGFlags":[{"name":"log_cache_size_limit_mb","value":"128"}]}`
	rec := do(t, srv, http.MethodPost, "/api/universes/u-1/upgrade", body)
	assert.Equal(t, rec.Code, http.StatusOK, rec.Body.String())
	assert.Assert(t, is.Contains(rec.Body.String(), `"taskUUID":"task-upgrade"`))

	payload := api.upgradePayload
	assert.Equal(t, payload.TaskType, upgrade.GFlagsTaskType)
	assert.Equal(t, payload.UniverseUUID, "u-1")
	assert.DeepEqual(t, payload.MasterGFlags, []model.GFlag{{Name: "max_log_size", Value: "256"}})
	assert.DeepEqual(t, payload.TserverGFlags,
		[]model.GFlag{{Name: "log_cache_size_limit_mb", Value: "128"}})
	assert.Equal(t, payload.SleepAfterMasterRestartMillis, int64(30000))

	state := srv.store.GetState()
	assert.Equal(t, state.Universe.VisibleModal, "")
}

func withSecondUniverse(api *fakePlatform) {
	api.universes = append(api.universes, model.Universe{
		UniverseUUID: "u-2",
		Name:         "staging",
		UniverseDetails: model.UniverseDetails{
			UserIntent: model.UserIntent{
				NumNodes:          1,
				ReplicationFactor: 1,
				MasterGFlags:      map[string]string{"max_log_size": "128", "v": "1"},
				TserverGFlags:     map[string]string{"ysql_enable_auth": "true"},
			},
		},
	})
}

func TestPostUpgradeEditsUniverseGFlags(t *testing.T) {
	srv, api := newTestServer(t)
	withSecondUniverse(api)
	body := `{"modal":"gFlagsModal","timeDelay":5,` +
		`"masterGFlags":[{"name":"max_log_size","value":"256"},{"name":"v","value":""}]}`
	rec := do(t, srv, http.MethodPost, "/api/universes/u-2/upgrade", body)
	assert.Equal(t, rec.Code, http.StatusOK, rec.Body.String())

	payload := api.upgradePayload
	assert.DeepEqual(t, payload.MasterGFlags, []model.GFlag{{Name: "max_log_size", Value: "256"}})
	assert.DeepEqual(t, payload.TserverGFlags,
		[]model.GFlag{{Name: "ysql_enable_auth", Value: "true"}})
	assert.Equal(t, payload.SleepAfterTServerRestartMillis, int64(5000))
}

func TestPostUpgradeIgnoresInterleavedRead(t *testing.T) {
	srv, api := newTestServer(t)
	withSecondUniverse(api)

	var armed atomic.Bool
	unsubscribe := srv.store.Subscribe(func(state reducers.RootState) {
		if state.Universe.CurrentUniverse.Data.UniverseUUID != "u-1" {
			return
		}
		if armed.CompareAndSwap(true, false) {
			rec := do(t, srv, http.MethodGet, "/api/universes/u-2", "")
			assert.Check(t, is.Equal(http.StatusOK, rec.Code))
		}
	})
	defer unsubscribe()

	armed.Store(true)
	rec := do(t, srv, http.MethodPost, "/api/universes/u-1/upgrade",
		`{"modal":"gFlagsModal","masterGFlags":[{"name":"v","value":"2"}]}`)
	assert.Equal(t, rec.Code, http.StatusOK, rec.Body.String())
	assert.Check(t, !armed.Load())
	assert.DeepEqual(t, api.sentUpgrades(), []string{"u-1/u-1"})
	assert.DeepEqual(t, api.upgradePayload.MasterGFlags, []model.GFlag{{Name: "v", Value: "2"}})
}

func TestConcurrentUpgrades(t *testing.T) {
	srv, api := newTestServer(t)
	withSecondUniverse(api)

	uuids := []string{"u-1", "u-2", "u-1", "u-2"}
	codes := make([]int, len(uuids))
	var wg sync.WaitGroup
	for i, uUUID := range uuids {
		wg.Add(1)
		go func(i int, uUUID string) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/universes/"+uUUID+"/upgrade",
				strings.NewReader(`{"modal":"gFlagsModal","timeDelay":1}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)
			codes[i] = rec.Code
		}(i, uUUID)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Check(t, is.Equal(http.StatusOK, code), uuids[i])
	}
	sent := api.sentUpgrades()
	assert.Check(t, is.Len(sent, len(uuids)))
	for _, s := range sent {
		assert.Check(t, s == "u-1/u-1" || s == "u-2/u-2", s)
	}
}

func TestPostUpgradeWithoutModal(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/universes/u-1/upgrade", `{"timeDelay":0}`)
	assert.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestPutGraphPeriod(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodPut, "/api/graph/period", `{"value":"6","unit":"hour"}`)
	assert.Equal(t, rec.Code, http.StatusOK)
	filter := srv.store.GetState().Graph.GraphFilter
	assert.Equal(t, filter.FilterValue, "6")
	assert.Equal(t, filter.EndMoment.Sub(filter.StartMoment), 6*time.Hour)

	rec = do(t, srv, http.MethodPut, "/api/graph/period", `{"value":"6","unit":"year"}`)
	assert.Equal(t, rec.Code, http.StatusBadRequest)
}

func TestGetStateAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t)
	do(t, srv, http.MethodGet, "/api/universes", "")

	rec := do(t, srv, http.MethodGet, "/api/state", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Assert(t, is.Contains(rec.Body.String(), `"universeList"`))

	rec = do(t, srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, rec.Code, http.StatusOK)
	assert.Assert(t, is.Contains(rec.Body.String(), "ybaconsole_http_requests_total"))
}
