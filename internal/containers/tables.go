/*
 * Copyright (c) YugabyteDB, Inc.
 */

package containers

import (
	"context"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/reducers"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// TablesProps are rendered by the tables views
type TablesProps struct {
	Tables   reducers.TablesState   `json:"tables"`
	Universe reducers.UniverseState `json:"universe"`
}

// Tables is the container of the table list, detail and operations
type Tables struct {
	store *Store
	api   actions.TablesAPI
}

// NewTables creates the tables container
func NewTables(s *Store, api actions.TablesAPI) *Tables {
	return &Tables{store: s, api: api}
}

// Props maps state to the tables props
func (c *Tables) Props() TablesProps {
	state := c.store.GetState()
	return TablesProps{Tables: state.Tables, Universe: state.Universe}
}

// FetchUniverseTables lists the tables of a universe
func (c *Tables) FetchUniverseTables(ctx context.Context, uUUID string) ([]model.Table, error) {
	return fetch(ctx, c.store, actions.FetchUniverseTables(c.api, uUUID),
		actions.FetchUniverseTablesSuccess, actions.FetchUniverseTablesFailure)
}

// ResetTablesList clears the table list
func (c *Tables) ResetTablesList(ctx context.Context) {
	c.store.Dispatch(ctx, actions.ResetTables())
}

// FetchTableDetail describes a table
func (c *Tables) FetchTableDetail(
	ctx context.Context,
	uUUID, tUUID string,
) (model.TableDetail, error) {
	return fetch(ctx, c.store, actions.FetchTableDetailRequest(c.api, uUUID, tUUID),
		actions.FetchTableDetailSuccessAction, actions.FetchTableDetailFailureAction)
}

// ResetTableDetail clears the table detail
func (c *Tables) ResetTableDetail(ctx context.Context) {
	c.store.Dispatch(ctx, actions.ResetTableDetailAction())
}

// FetchColumnTypes fetches the column data types
func (c *Tables) FetchColumnTypes(ctx context.Context) (model.ColumnTypes, error) {
	return fetch(ctx, c.store, actions.FetchColumnTypesRequest(c.api),
		actions.FetchColumnTypesSuccessAction, actions.FetchColumnTypesFailureAction)
}

// CreateTable creates a table from its definition
func (c *Tables) CreateTable(
	ctx context.Context,
	uUUID string,
	definition model.TableDefinition,
) (model.TaskResponse, error) {
	return fetch(ctx, c.store, actions.CreateUniverseTableRequest(c.api, uUUID, definition),
		actions.CreateUniverseTableSuccessAction, actions.CreateUniverseTableFailureAction)
}

// ToggleTableView switches between the list and the grid view
func (c *Tables) ToggleTableView(ctx context.Context, view string) {
	c.store.Dispatch(ctx, actions.ToggleTableViewAction(view))
}

// BulkImport loads data from S3 into a table
func (c *Tables) BulkImport(
	ctx context.Context,
	uUUID, tUUID string,
	params model.BulkImportParams,
) (model.TaskResponse, error) {
	return taskOf(respond(ctx, c.store, actions.BulkImportRequest(c.api, uUUID, tUUID, params),
		actions.BulkImportResponseAction))
}

// DropTable drops a table
func (c *Tables) DropTable(ctx context.Context, uUUID, tUUID string) (model.TaskResponse, error) {
	return taskOf(respond(ctx, c.store, actions.DropTableRequest(c.api, uUUID, tUUID),
		actions.DropTableResponseAction))
}

// CreateTableBackup backs up a table
func (c *Tables) CreateTableBackup(
	ctx context.Context,
	uUUID, tUUID string,
	params model.BackupParams,
) (model.TaskResponse, error) {
	if params.ActionType == "" {
		params.ActionType = model.CreateBackupAction
	}
	return taskOf(respond(ctx, c.store,
		actions.CreateTableBackupRequest(c.api, uUUID, tUUID, params),
		actions.CreateTableBackupResponseAction))
}

// RestoreTableBackup restores a backup into a universe
func (c *Tables) RestoreTableBackup(
	ctx context.Context,
	uUUID, bUUID string,
	params model.RestoreParams,
) (model.TaskResponse, error) {
	if params.ActionType == "" {
		params.ActionType = model.RestoreBackupAction
	}
	return taskOf(respond(ctx, c.store,
		actions.RestoreTableBackupRequest(c.api, uUUID, bUUID, params),
		actions.RestoreTableBackupResponseAction))
}

func taskOf(r store.Response) (model.TaskResponse, error) {
	if r.Err != nil {
		return model.TaskResponse{}, r.Err
	}
	task, _ := r.Data.(model.TaskResponse)
	return task, nil
}
