/*
 * Copyright (c) YugabyteDB, Inc.
 */

package reducers

import (
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// TasksState holds task progress by task UUID and the customer's task list
type TasksState struct {
	TaskProgressData map[string]store.AsyncData[model.TaskStatus] `json:"taskProgressData"`
	CustomerTaskList store.AsyncData[[]model.CustomerTask]        `json:"customerTaskList"`
}

// InitialTasksState with no task tracked
func InitialTasksState() TasksState {
	return TasksState{
		TaskProgressData: map[string]store.AsyncData[model.TaskStatus]{},
		CustomerTaskList: store.Init[[]model.CustomerTask](),
	}
}

func (t TasksState) withProgress(
	taskUUID string,
	progress store.AsyncData[model.TaskStatus],
) TasksState {
	data := make(map[string]store.AsyncData[model.TaskStatus], len(t.TaskProgressData)+1)
	for k, v := range t.TaskProgressData {
		data[k] = v
	}
	data[taskUUID] = progress
	t.TaskProgressData = data
	return t
}

// Tasks reduces task actions
func Tasks(state TasksState, action store.Action) TasksState {
	switch action.Type {
	case actions.FetchTaskProgress:
		taskUUID, _ := store.PayloadAs[string](action)
		return state.withProgress(taskUUID, store.Loading(state.TaskProgressData[taskUUID]))
	case actions.FetchTaskProgressSuccess:
		p, ok := store.PayloadAs[actions.TaskProgress](action)
		if !ok {
			return state
		}
		return state.withProgress(p.TaskUUID, store.Success(p.Status))
	case actions.FetchTaskProgressFailure:
		e, ok := store.PayloadAs[actions.TaskProgressError](action)
		if !ok {
			return state
		}
		return state.withProgress(e.TaskUUID,
			store.Failure(state.TaskProgressData[e.TaskUUID], e.Err))
	case actions.ResetCustomerTasks:
		state.CustomerTaskList = store.Init[[]model.CustomerTask]()
		return state
	}
	state.CustomerTaskList, _ = setAsyncList(state.CustomerTaskList, action,
		actions.FetchCustomerTasks, actions.FetchCustomerTasksSuccess,
		actions.FetchCustomerTasksFailure)
	return state
}
