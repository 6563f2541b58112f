/*
 * Copyright (c) YugabyteDB, Inc.
 */

package reducers

import (
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// TablesState holds the tables of the current universe and the outcome of the
// last operation on them
type TablesState struct {
	UniverseTablesList store.AsyncData[[]model.Table]      `json:"universeTablesList"`
	CurrentTableDetail store.AsyncData[model.TableDetail]  `json:"currentTableDetail"`
	ColumnDataTypes    store.AsyncData[model.ColumnTypes]  `json:"columnDataTypes"`
	CurrentTableView   string                              `json:"currentTableView"`
	CreateTable        store.AsyncData[model.TaskResponse] `json:"createTable"`
	BulkImport         store.AsyncData[model.TaskResponse] `json:"bulkImport"`
	DropTable          store.AsyncData[model.TaskResponse] `json:"dropTable"`
	CreateBackup       store.AsyncData[model.TaskResponse] `json:"createBackup"`
	RestoreBackup      store.AsyncData[model.TaskResponse] `json:"restoreBackup"`
}

// InitialTablesState shows the list view with nothing fetched
func InitialTablesState() TablesState {
	return TablesState{
		UniverseTablesList: store.Init[[]model.Table](),
		CurrentTableDetail: store.Init[model.TableDetail](),
		ColumnDataTypes:    store.Init[model.ColumnTypes](),
		CurrentTableView:   actions.ListView,
		CreateTable:        store.Init[model.TaskResponse](),
		BulkImport:         store.Init[model.TaskResponse](),
		DropTable:          store.Init[model.TaskResponse](),
		CreateBackup:       store.Init[model.TaskResponse](),
		RestoreBackup:      store.Init[model.TaskResponse](),
	}
}

// Tables reduces table actions
func Tables(state TablesState, action store.Action) TablesState {
	switch action.Type {
	case actions.ResetTablesList:
		state.UniverseTablesList = store.Init[[]model.Table]()
		return state
	case actions.ResetTableDetail:
		state.CurrentTableDetail = store.Init[model.TableDetail]()
		return state
	case actions.ToggleTableView:
		if view, ok := store.PayloadAs[string](action); ok && view != "" {
			state.CurrentTableView = view
		}
		return state
	}

	var ok bool
	if state.UniverseTablesList, ok = setAsyncList(state.UniverseTablesList, action,
		actions.FetchTablesList, actions.FetchTablesListSuccess,
		actions.FetchTablesListFailure); ok {
		return state
	}
	if state.CurrentTableDetail, ok = setAsync(state.CurrentTableDetail, action,
		actions.FetchTableDetail, actions.FetchTableDetailSuccess,
		actions.FetchTableDetailFailure); ok {
		return state
	}
	if state.ColumnDataTypes, ok = setAsync(state.ColumnDataTypes, action,
		actions.FetchColumnTypes, actions.FetchColumnTypesSuccess,
		actions.FetchColumnTypesFailure); ok {
		return state
	}
	if state.CreateTable, ok = setAsync(state.CreateTable, action,
		actions.CreateUniverseTable, actions.CreateUniverseTableSuccess,
		actions.CreateUniverseTableFailure); ok {
		return state
	}
	if state.BulkImport, ok = setResponse(state.BulkImport, action,
		actions.BulkImport, actions.BulkImportResponse); ok {
		return state
	}
	if state.DropTable, ok = setResponse(state.DropTable, action,
		actions.DropTable, actions.DropTableResponse); ok {
		return state
	}
	if state.CreateBackup, ok = setResponse(state.CreateBackup, action,
		actions.CreateBackupTable, actions.CreateBackupTableResponse); ok {
		return state
	}
	state.RestoreBackup, _ = setResponse(state.RestoreBackup, action,
		actions.RestoreTableBackup, actions.RestoreTableBackupResponse)
	return state
}
