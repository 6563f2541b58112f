/*
 * Copyright (c) YugabyteDB, Inc.
 */

package task

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/templates"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

const (
	defaultTaskListing = "table {{.Title}}\t{{.UUID}}\t{{.Target}}" +
		"\t{{.Status}}\t{{.Percent}}\t{{.CreateTime}}"

	titleHeader      = "Title"
	targetHeader     = "Target UUID"
	percentHeader    = "Completion"
	createTimeHeader = "Creation Time"
)

// Context for customer task outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	t model.CustomerTask
}

// NewTaskFormat for formatting output
func NewTaskFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultTaskListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Tasks
func Write(ctx formatter.Context, tasks []model.CustomerTask) error {
	if written, err := ctx.WriteJSON(tasks); written {
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, task := range tasks {
			err := format(&Context{t: task})
			if err != nil {
				logrus.Debugf("Error rendering task: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewTaskContext(), render)
}

// NewTaskContext creates a new context for rendering task
func NewTaskContext() *Context {
	taskCtx := Context{}
	taskCtx.Header = formatter.SubHeaderContext{
		"Title":      titleHeader,
		"UUID":       formatter.UUIDHeader,
		"Target":     targetHeader,
		"Status":     formatter.StatusHeader,
		"Percent":    percentHeader,
		"CreateTime": createTimeHeader,
	}
	return &taskCtx
}

// Title of the task
func (c *Context) Title() string {
	return c.t.Title
}

// UUID of the task
func (c *Context) UUID() string {
	return c.t.ID
}

// Target of the task
func (c *Context) Target() string {
	return c.t.TargetUUID
}

// Status of the task
func (c *Context) Status() string {
	return c.t.Status
}

// Percent complete
func (c *Context) Percent() string {
	return templates.Percent(c.t.PercentComplete)
}

// CreateTime of the task
func (c *Context) CreateTime() string {
	return c.t.CreateTime
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.t)
}
