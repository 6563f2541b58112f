/*
 * Copyright (c) YugabyteDB, Inc.
 */

// Package actions defines the action types of the console and the creators that
// build them. Creators of network operations return an action carrying the request,
// the store resolves it and the caller follows up with the success, failure or
// response action.
package actions

import (
	"context"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// TablesAPI is the platform surface used by table actions
type TablesAPI interface {
	ListTables(ctx context.Context, uUUID string) ([]model.Table, error)
	DescribeTable(ctx context.Context, uUUID, tUUID string) (model.TableDetail, error)
	CreateTable(
		ctx context.Context, uUUID string, definition model.TableDefinition,
	) (model.TaskResponse, error)
	DropTable(ctx context.Context, uUUID, tUUID string) (model.TaskResponse, error)
	BulkImport(
		ctx context.Context, uUUID, tUUID string, req model.BulkImportParams,
	) (model.TaskResponse, error)
	CreateTableBackup(
		ctx context.Context, uUUID, tUUID string, req model.BackupParams,
	) (model.TaskResponse, error)
	RestoreBackup(
		ctx context.Context, uUUID, bUUID string, req model.RestoreParams,
	) (model.TaskResponse, error)
	ColumnTypes(ctx context.Context) (model.ColumnTypes, error)
}

// CloudAPI is the platform surface used by cloud provider actions
type CloudAPI interface {
	ListProviders(ctx context.Context) ([]model.Provider, error)
	ListRegions(ctx context.Context) ([]model.Region, error)
	DeleteProvider(ctx context.Context, pUUID string) (model.TaskResponse, error)
}

// UniverseAPI is the platform surface used by universe actions
type UniverseAPI interface {
	ListUniverses(ctx context.Context) ([]model.Universe, error)
	GetUniverse(ctx context.Context, uUUID string) (model.Universe, error)
	RollingUpgrade(
		ctx context.Context, uUUID string, payload model.RollingUpgradePayload,
	) (model.TaskResponse, error)
	SoftwareVersions(ctx context.Context) ([]string, error)
}

// TasksAPI is the platform surface used by task actions
type TasksAPI interface {
	TaskStatus(ctx context.Context, taskUUID string) (model.TaskStatus, error)
	ListTasks(ctx context.Context) ([]model.CustomerTask, error)
}

// CustomerAPI is the platform surface used by customer actions
type CustomerAPI interface {
	SessionInfo(ctx context.Context) (model.SessionInfo, error)
}

// GraphAPI is the platform surface used by graph actions
type GraphAPI interface {
	QueryMetrics(ctx context.Context, query model.MetricQuery) (model.MetricsResponse, error)
}

// API is everything the console calls on the platform
type API interface {
	TablesAPI
	CloudAPI
	UniverseAPI
	TasksAPI
	CustomerAPI
	GraphAPI
}

func request(t store.ActionType, fn store.Request) store.Action {
	return store.Action{Type: t, Request: fn}
}

func success(t store.ActionType, payload interface{}) store.Action {
	return store.Action{Type: t, Payload: payload}
}

func failure(t store.ActionType, err error) store.Action {
	return store.Action{Type: t, Payload: err, Error: true}
}

// response folds a resolved request into a single action, the payload being the
// data on success and the error otherwise
func response(t store.ActionType, r store.Response) store.Action {
	if r.Err != nil {
		return failure(t, r.Err)
	}
	return success(t, r.Data)
}
