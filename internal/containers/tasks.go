/*
 * Copyright (c) YugabyteDB, Inc.
 */

package containers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/reducers"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/store"
	"golang.org/x/exp/slices"
	"golang.org/x/time/rate"
)

// DefaultPollInterval between two task progress requests
const DefaultPollInterval = 2 * time.Second

// ErrTaskTimeout is returned when a task is still running once the wait times out
var ErrTaskTimeout = errors.New("wait timeout, operation could still be on-going")

// Tasks is the container of task progress
type Tasks struct {
	store *Store
	api   actions.TasksAPI

	// PollInterval between progress requests while waiting for a task
	PollInterval time.Duration
}

// NewTasks creates the tasks container
func NewTasks(s *Store, api actions.TasksAPI) *Tasks {
	return &Tasks{store: s, api: api, PollInterval: DefaultPollInterval}
}

// Props maps state to the task props
func (c *Tasks) Props() reducers.TasksState {
	return c.store.GetState().Tasks
}

// FetchTaskProgress fetches the progress of a task
func (c *Tasks) FetchTaskProgress(ctx context.Context, taskUUID string) (model.TaskStatus, error) {
	return fetch(ctx, c.store, actions.FetchTaskProgressRequest(c.api, taskUUID),
		func(status model.TaskStatus) store.Action {
			return actions.FetchTaskProgressSuccessAction(taskUUID, status)
		},
		func(err error) store.Action {
			return actions.FetchTaskProgressFailureAction(taskUUID, err)
		})
}

// FetchCustomerTasks lists the tasks of the customer
func (c *Tasks) FetchCustomerTasks(ctx context.Context) ([]model.CustomerTask, error) {
	return fetch(ctx, c.store, actions.FetchCustomerTasksRequest(c.api),
		actions.FetchCustomerTasksSuccessAction, actions.FetchCustomerTasksFailureAction)
}

// WaitForTask polls the progress of a task until it completes or the timeout
// elapses. onProgress, when set, sees every status fetched. A task ending in a
// failed state is returned as an error.
func (c *Tasks) WaitForTask(
	ctx context.Context,
	taskUUID string,
	timeout time.Duration,
	onProgress func(model.TaskStatus),
) (model.TaskStatus, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	interval := c.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	var status model.TaskStatus
	for {
		if err := limiter.Wait(ctx); err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				return status, ctx.Err()
			}
			// the limiter gives up early when the next poll would miss the deadline
			return status, ErrTaskTimeout
		}
		var err error
		status, err = c.FetchTaskProgress(ctx, taskUUID)
		if err != nil {
			return status, err
		}
		logrus.Debugf("Task \"%s\" completion percentage: %.0f%%\n", status.Title, status.Percent)
		if onProgress != nil {
			onProgress(status)
		}
		if !slices.Contains(model.CompletedTaskStates(), status.Status) {
			continue
		}
		if slices.Contains(model.ErrorTaskStates(), status.Status) {
			return status, fmt.Errorf("operation failed with state: %s", status.Status)
		}
		return status, nil
	}
}
