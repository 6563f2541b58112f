/*
 * Copyright (c) YugabyteDB, Inc.
 */

package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

// TaskStatus fetches the progress of a task
func (a *AuthAPIClient) TaskStatus(ctx context.Context, taskUUID string) (model.TaskStatus, error) {
	var r model.TaskStatus
	params, err := newRestAPIParameters(http.MethodGet, "tasks/"+url.PathEscape(taskUUID),
		"Task", "Get Task Status", true, nil)
	if err != nil {
		return r, err
	}
	err = a.restJSON(ctx, params, &r)
	return r, err
}

// ListTasks fetches the customer task list
func (a *AuthAPIClient) ListTasks(ctx context.Context) ([]model.CustomerTask, error) {
	params, err := newRestAPIParameters(http.MethodGet, "tasks_list",
		"Task", "List", true, nil)
	if err != nil {
		return nil, err
	}
	tasks := make([]model.CustomerTask, 0)
	if err := a.restJSON(ctx, params, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
