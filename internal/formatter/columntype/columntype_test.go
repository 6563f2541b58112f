/*
 * Copyright (c) YugabyteDB, Inc.
 */

package columntype

import (
	"bytes"
	"testing"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"gotest.tools/v3/assert"
)

func TestWriteColumnTypes(t *testing.T) {
	out := bytes.NewBufferString("")
	ctx := formatter.Context{Output: out, Format: NewColumnTypeFormat("{{.Category}}/{{.Type}}")}
	err := Write(ctx, model.ColumnTypes{
		Primitives:  []string{"INT", "TEXT"},
		Collections: []string{"MAP"},
	})
	assert.NilError(t, err)
	assert.Equal(t, out.String(), "Primitive/INT\nPrimitive/TEXT\nCollection/MAP\n")
}
