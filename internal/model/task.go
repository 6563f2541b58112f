/*
 * Copyright (c) YugabyteDB, Inc.
 */

package model

// TaskResponse is returned by every operation that starts a platform task
type TaskResponse struct {
	TaskUUID     string `json:"taskUUID,omitempty"`
	ResourceUUID string `json:"resourceUUID,omitempty"`
	Success      bool   `json:"success,omitempty"`
	Message      string `json:"message,omitempty"`
}

// SubTaskDetails is a group of subtasks of a task
type SubTaskDetails struct {
	Title string `json:"title"`
	State string `json:"state"`
}

// TaskDetails holds the subtask groups of a task
type TaskDetails struct {
	TaskDetails []SubTaskDetails `json:"taskDetails"`
}

// TaskStatus is the progress of a task
type TaskStatus struct {
	Title   string      `json:"title"`
	Status  string      `json:"status"`
	Percent float64     `json:"percent"`
	Details TaskDetails `json:"details"`
}

// CustomerTask is an entry of the customer task list
type CustomerTask struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	PercentComplete float64 `json:"percentComplete"`
	CreateTime      string  `json:"createTime,omitempty"`
	TargetUUID      string  `json:"targetUUID,omitempty"`
}

// Task states reported by the platform
const (
	// CreatedTaskStatus task status
	CreatedTaskStatus = "Created"
	// InitializingTaskStatus task status
	InitializingTaskStatus = "Initializing"
	// RunningTaskStatus task status
	RunningTaskStatus = "Running"
	// SuccessTaskStatus task status
	SuccessTaskStatus = "Success"
	// FailureTaskStatus task status
	FailureTaskStatus = "Failure"
	// UnknownTaskStatus task status
	UnknownTaskStatus = "Unknown"
	// AbortedTaskStatus task status
	AbortedTaskStatus = "Aborted"
)

// CompletedTaskStates returns set of states that mark the task as completed
func CompletedTaskStates() []string {
	return []string{SuccessTaskStatus, FailureTaskStatus, AbortedTaskStatus}
}

// ErrorTaskStates return set of states that mark state as failure
func ErrorTaskStates() []string {
	return []string{FailureTaskStatus, AbortedTaskStatus}
}
