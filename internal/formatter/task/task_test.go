/*
 * Copyright (c) YugabyteDB, Inc.
 */

package task

import (
	"bytes"
	"testing"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"gotest.tools/v3/assert"
)

func TestWriteTasks(t *testing.T) {
	out := bytes.NewBufferString("")
	ctx := formatter.Context{Output: out, Format: NewTaskFormat("{{.Title}} {{.Status}} {{.Percent}}")}
	err := Write(ctx, []model.CustomerTask{
		{ID: "t-1", Title: "Upgrading software", Status: model.RunningTaskStatus, PercentComplete: 42.4},
	})
	assert.NilError(t, err)
	assert.Equal(t, out.String(), "Upgrading software Running 42%\n")
}

func TestWriteSubmitted(t *testing.T) {
	out := bytes.NewBufferString("")
	ctx := formatter.Context{Output: out, Format: NewSubmittedFormat(formatter.TableFormatKey)}
	err := WriteSubmitted(ctx, []model.TaskResponse{{TaskUUID: "t-1", ResourceUUID: "u-1"}})
	assert.NilError(t, err)
	assert.Equal(t, out.String(), "Task UUID   Resource UUID\nt-1         u-1\n")
}
