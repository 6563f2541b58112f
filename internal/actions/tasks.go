/*
 * Copyright (c) YugabyteDB, Inc.
 */

package actions

import (
	"context"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
)

// Task action types
const (
	FetchTaskProgress         store.ActionType = "FETCH_TASK_PROGRESS"
	FetchTaskProgressSuccess  store.ActionType = "FETCH_TASK_PROGRESS_SUCCESS"
	FetchTaskProgressFailure  store.ActionType = "FETCH_TASK_PROGRESS_FAILURE"
	FetchCustomerTasks        store.ActionType = "FETCH_CUSTOMER_TASKS"
	FetchCustomerTasksSuccess store.ActionType = "FETCH_CUSTOMER_TASKS_SUCCESS"
	FetchCustomerTasksFailure store.ActionType = "FETCH_CUSTOMER_TASKS_FAILURE"
	ResetCustomerTasks        store.ActionType = "RESET_CUSTOMER_TASKS"
)

// TaskProgress is the payload of a task progress success
type TaskProgress struct {
	TaskUUID string           `json:"taskUUID"`
	Status   model.TaskStatus `json:"status"`
}

// TaskProgressError is the payload of a task progress failure
type TaskProgressError struct {
	TaskUUID string `json:"taskUUID"`
	Err      error  `json:"-"`
}

func (e TaskProgressError) Error() string {
	return e.Err.Error()
}

func (e TaskProgressError) Unwrap() error {
	return e.Err
}

// FetchTaskProgressRequest fetches the progress of a task
func FetchTaskProgressRequest(api TasksAPI, taskUUID string) store.Action {
	a := request(FetchTaskProgress, func(ctx context.Context) (interface{}, error) {
		return api.TaskStatus(ctx, taskUUID)
	})
	a.Payload = taskUUID
	return a
}

// FetchTaskProgressSuccessAction carries the progress of a task
func FetchTaskProgressSuccessAction(taskUUID string, status model.TaskStatus) store.Action {
	return success(FetchTaskProgressSuccess, TaskProgress{TaskUUID: taskUUID, Status: status})
}

// FetchTaskProgressFailureAction carries the progress fetch error of a task
func FetchTaskProgressFailureAction(taskUUID string, err error) store.Action {
	return failure(FetchTaskProgressFailure, TaskProgressError{TaskUUID: taskUUID, Err: err})
}

// FetchCustomerTasksRequest lists the tasks of the customer
func FetchCustomerTasksRequest(api TasksAPI) store.Action {
	return request(FetchCustomerTasks, func(ctx context.Context) (interface{}, error) {
		return api.ListTasks(ctx)
	})
}

// FetchCustomerTasksSuccessAction carries the customer tasks
func FetchCustomerTasksSuccessAction(tasks []model.CustomerTask) store.Action {
	return success(FetchCustomerTasksSuccess, tasks)
}

// FetchCustomerTasksFailureAction carries the task listing error
func FetchCustomerTasksFailureAction(err error) store.Action {
	return failure(FetchCustomerTasksFailure, err)
}

// ResetCustomerTasksAction clears the customer task list
func ResetCustomerTasksAction() store.Action {
	return store.Action{Type: ResetCustomerTasks}
}
