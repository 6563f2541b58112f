/*
 * Copyright (c) YugabyteDB, Inc.
 */

package task

import (
	"encoding/json"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

const (
	defaultSubmittedListing = "table {{.TaskUUID}}\t{{.ResourceUUID}}"

	taskUUIDHeader     = "Task UUID"
	resourceUUIDHeader = "Resource UUID"
)

// SubmittedContext for the task started by an operation
type SubmittedContext struct {
	formatter.HeaderContext
	formatter.Context
	t model.TaskResponse
}

// NewSubmittedFormat for formatting output
func NewSubmittedFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultSubmittedListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// WriteSubmitted renders the tasks started by an operation
func WriteSubmitted(ctx formatter.Context, tasks []model.TaskResponse) error {
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, task := range tasks {
			if err := format(&SubmittedContext{t: task}); err != nil {
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewSubmittedContext(), render)
}

// NewSubmittedContext creates a new context for rendering started tasks
func NewSubmittedContext() *SubmittedContext {
	taskCtx := SubmittedContext{}
	taskCtx.Header = formatter.SubHeaderContext{
		"TaskUUID":     taskUUIDHeader,
		"ResourceUUID": resourceUUIDHeader,
	}
	return &taskCtx
}

// TaskUUID fetches the task UUID
func (c *SubmittedContext) TaskUUID() string {
	return c.t.TaskUUID
}

// ResourceUUID fetches the resource UUID
func (c *SubmittedContext) ResourceUUID() string {
	return c.t.ResourceUUID
}

// MarshalJSON function
func (c *SubmittedContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.t)
}
