/*
 * Copyright (c) YugabyteDB, Inc.
 */

package actions

import (
	"context"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// Table action types
const (
	FetchTablesList            store.ActionType = "FETCH_TABLES_LIST"
	FetchTablesListSuccess     store.ActionType = "FETCH_TABLES_LIST_SUCCESS"
	FetchTablesListFailure     store.ActionType = "FETCH_TABLES_LIST_FAILURE"
	ResetTablesList            store.ActionType = "RESET_TABLES_LIST"
	FetchTableDetail           store.ActionType = "FETCH_TABLE_DETAIL"
	FetchTableDetailSuccess    store.ActionType = "FETCH_TABLE_DETAIL_SUCCESS"
	FetchTableDetailFailure    store.ActionType = "FETCH_TABLE_DETAIL_FAILURE"
	ResetTableDetail           store.ActionType = "RESET_TABLE_DETAIL"
	CreateUniverseTable        store.ActionType = "CREATE_UNIVERSE_TABLE"
	CreateUniverseTableSuccess store.ActionType = "CREATE_UNIVERSE_TABLE_SUCCESS"
	CreateUniverseTableFailure store.ActionType = "CREATE_UNIVERSE_TABLE_FAILURE"
	FetchColumnTypes           store.ActionType = "FETCH_COLUMN_TYPES"
	FetchColumnTypesSuccess    store.ActionType = "FETCH_COLUMN_TYPES_SUCCESS"
	FetchColumnTypesFailure    store.ActionType = "FETCH_COLUMN_TYPES_FAILURE"
	ToggleTableView            store.ActionType = "TOGGLE_TABLE_VIEW"
	BulkImport                 store.ActionType = "BULK_IMPORT"
	BulkImportResponse         store.ActionType = "BULK_IMPORT_RESPONSE"
	DropTable                  store.ActionType = "DROP_TABLE"
	DropTableResponse          store.ActionType = "DROP_TABLE_RESPONSE"
	CreateBackupTable          store.ActionType = "CREATE_BACKUP_TABLE"
	CreateBackupTableResponse  store.ActionType = "CREATE_BACKUP_TABLE_RESPONSE"
	RestoreTableBackup         store.ActionType = "RESTORE_TABLE_BACKUP"
	RestoreTableBackupResponse store.ActionType = "RESTORE_TABLE_BACKUP_RESPONSE"
)

// Table views toggled by ToggleTableView
const (
	ListView = "list"
	GridView = "grid"
)

// FetchUniverseTables lists the tables of a universe
func FetchUniverseTables(api TablesAPI, uUUID string) store.Action {
	return request(FetchTablesList, func(ctx context.Context) (interface{}, error) {
		return api.ListTables(ctx, uUUID)
	})
}

// FetchUniverseTablesSuccess carries the fetched tables
func FetchUniverseTablesSuccess(tables []model.Table) store.Action {
	return success(FetchTablesListSuccess, tables)
}

// FetchUniverseTablesFailure carries the listing error
func FetchUniverseTablesFailure(err error) store.Action {
	return failure(FetchTablesListFailure, err)
}

// ResetTables clears the table list
func ResetTables() store.Action {
	return store.Action{Type: ResetTablesList}
}

// FetchTableDetailRequest describes a single table
func FetchTableDetailRequest(api TablesAPI, uUUID, tUUID string) store.Action {
	return request(FetchTableDetail, func(ctx context.Context) (interface{}, error) {
		return api.DescribeTable(ctx, uUUID, tUUID)
	})
}

// FetchTableDetailSuccessAction carries the described table
func FetchTableDetailSuccessAction(detail model.TableDetail) store.Action {
	return success(FetchTableDetailSuccess, detail)
}

// FetchTableDetailFailureAction carries the describe error
func FetchTableDetailFailureAction(err error) store.Action {
	return failure(FetchTableDetailFailure, err)
}

// ResetTableDetailAction clears the current table detail
func ResetTableDetailAction() store.Action {
	return store.Action{Type: ResetTableDetail}
}

// CreateUniverseTableRequest creates a table from the form values
func CreateUniverseTableRequest(
	api TablesAPI,
	uUUID string,
	definition model.TableDefinition,
) store.Action {
	return request(CreateUniverseTable, func(ctx context.Context) (interface{}, error) {
		return api.CreateTable(ctx, uUUID, definition)
	})
}

// CreateUniverseTableSuccessAction carries the create task
func CreateUniverseTableSuccessAction(r model.TaskResponse) store.Action {
	return success(CreateUniverseTableSuccess, r)
}

// CreateUniverseTableFailureAction carries the create error
func CreateUniverseTableFailureAction(err error) store.Action {
	return failure(CreateUniverseTableFailure, err)
}

// FetchColumnTypesRequest fetches the column data types. The call is not customer scoped.
func FetchColumnTypesRequest(api TablesAPI) store.Action {
	return request(FetchColumnTypes, func(ctx context.Context) (interface{}, error) {
		return api.ColumnTypes(ctx)
	})
}

// FetchColumnTypesSuccessAction carries the column types
func FetchColumnTypesSuccessAction(types model.ColumnTypes) store.Action {
	return success(FetchColumnTypesSuccess, types)
}

// FetchColumnTypesFailureAction carries the column types error
func FetchColumnTypesFailureAction(err error) store.Action {
	return failure(FetchColumnTypesFailure, err)
}

// ToggleTableViewAction switches the table view to currentView
func ToggleTableViewAction(currentView string) store.Action {
	return success(ToggleTableView, currentView)
}

// BulkImportRequest imports data from S3 into a table
func BulkImportRequest(
	api TablesAPI,
	uUUID, tUUID string,
	params model.BulkImportParams,
) store.Action {
	return request(BulkImport, func(ctx context.Context) (interface{}, error) {
		return api.BulkImport(ctx, uUUID, tUUID, params)
	})
}

// BulkImportResponseAction carries the outcome of a bulk import
func BulkImportResponseAction(r store.Response) store.Action {
	return response(BulkImportResponse, r)
}

// DropTableRequest drops a table
func DropTableRequest(api TablesAPI, uUUID, tUUID string) store.Action {
	return request(DropTable, func(ctx context.Context) (interface{}, error) {
		return api.DropTable(ctx, uUUID, tUUID)
	})
}

// DropTableResponseAction carries the outcome of a drop
func DropTableResponseAction(r store.Response) store.Action {
	return response(DropTableResponse, r)
}

// CreateTableBackupRequest backs up a table
func CreateTableBackupRequest(
	api TablesAPI,
	uUUID, tUUID string,
	params model.BackupParams,
) store.Action {
	return request(CreateBackupTable, func(ctx context.Context) (interface{}, error) {
		return api.CreateTableBackup(ctx, uUUID, tUUID, params)
	})
}

// CreateTableBackupResponseAction carries the outcome of a backup
func CreateTableBackupResponseAction(r store.Response) store.Action {
	return response(CreateBackupTableResponse, r)
}

// RestoreTableBackupRequest restores a backup into a universe
func RestoreTableBackupRequest(
	api TablesAPI,
	uUUID, bUUID string,
	params model.RestoreParams,
) store.Action {
	return request(RestoreTableBackup, func(ctx context.Context) (interface{}, error) {
		return api.RestoreBackup(ctx, uUUID, bUUID, params)
	})
}

// RestoreTableBackupResponseAction carries the outcome of a restore
func RestoreTableBackupResponseAction(r store.Response) store.Action {
	return response(RestoreTableBackupResponse, r)
}
