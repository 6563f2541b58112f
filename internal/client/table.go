/*
 * Copyright (c) YugabyteDB, Inc.
 */

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

func tablesRoute(uUUID string) string {
	return fmt.Sprintf("universes/%s/tables", url.PathEscape(uUUID))
}

func tableRoute(uUUID, tUUID string) string {
	return fmt.Sprintf("%s/%s", tablesRoute(uUUID), url.PathEscape(tUUID))
}

// ListTables for the listing of all tables in the universe
func (a *AuthAPIClient) ListTables(ctx context.Context, uUUID string) ([]model.Table, error) {
	params, err := newRestAPIParameters(http.MethodGet, tablesRoute(uUUID),
		"Table", "List", true, nil)
	if err != nil {
		return nil, err
	}
	tables := make([]model.Table, 0)
	if err := a.restJSON(ctx, params, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

// DescribeTable for the description of a table in the universe
func (a *AuthAPIClient) DescribeTable(
	ctx context.Context,
	uUUID, tUUID string,
) (model.TableDetail, error) {
	var detail model.TableDetail
	params, err := newRestAPIParameters(http.MethodGet, tableRoute(uUUID, tUUID),
		"Table", "Describe", true, nil)
	if err != nil {
		return detail, err
	}
	err = a.restJSON(ctx, params, &detail)
	return detail, err
}

// CreateTable creates a table in the universe
func (a *AuthAPIClient) CreateTable(
	ctx context.Context,
	uUUID string,
	definition model.TableDefinition,
) (model.TaskResponse, error) {
	return a.taskCall(ctx, http.MethodPost, tablesRoute(uUUID), "Table", "Create", definition)
}

// DropTable drops a table from the universe
func (a *AuthAPIClient) DropTable(
	ctx context.Context,
	uUUID, tUUID string,
) (model.TaskResponse, error) {
	return a.taskCall(ctx, http.MethodDelete, tableRoute(uUUID, tUUID), "Table", "Drop", nil)
}

// BulkImport loads data from object storage into a table
func (a *AuthAPIClient) BulkImport(
	ctx context.Context,
	uUUID, tUUID string,
	req model.BulkImportParams,
) (model.TaskResponse, error) {
	return a.taskCall(ctx, http.MethodPut, tableRoute(uUUID, tUUID)+"/bulk_import",
		"Table", "Bulk Import", req)
}

// CreateTableBackup starts a backup of a single table
func (a *AuthAPIClient) CreateTableBackup(
	ctx context.Context,
	uUUID, tUUID string,
	req model.BackupParams,
) (model.TaskResponse, error) {
	return a.taskCall(ctx, http.MethodPut, tableRoute(uUUID, tUUID)+"/create_backup",
		"Table", "Create Backup", req)
}

// taskCall performs a call answered with a task reference
func (a *AuthAPIClient) taskCall(
	ctx context.Context,
	method, route, entity, operation string,
	body interface{},
) (model.TaskResponse, error) {
	var r model.TaskResponse
	params, err := newRestAPIParameters(method, route, entity, operation, true, body)
	if err != nil {
		return r, err
	}
	err = a.restJSON(ctx, params, &r)
	return r, err
}
