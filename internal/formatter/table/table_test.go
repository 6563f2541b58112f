/*
 * Copyright (c) YugabyteDB, Inc.
 */

package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestWriteTableListing(t *testing.T) {
	var out bytes.Buffer
	ctx := formatter.Context{Output: &out, Format: NewTableFormat("")}

	err := Write(ctx, []model.Table{{
		TableName: "orders", TableUUID: "t-1", TableType: "YQL_TABLE_TYPE",
		KeySpace: "shop", SizeBytes: 2048,
	}})
	assert.NilError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Assert(t, is.Len(lines, 2))
	assert.Check(t, is.Contains(lines[0], "Table Name"))
	assert.Check(t, is.Contains(lines[0], "SST size"))
	assert.Check(t, is.Contains(lines[1], "2.0 KiB"))
	assert.Check(t, is.Contains(lines[1], "false"))
}

func TestWriteTableListingJSON(t *testing.T) {
	var out bytes.Buffer
	ctx := formatter.Context{Output: &out, Format: formatter.JSONFormatKey, Command: "list"}

	assert.NilError(t, Write(ctx, []model.Table{{TableName: "orders", TableUUID: "t-1"}}))
	assert.Check(t, is.Equal(`[{"tableUUID":"t-1","tableName":"orders"}]`+"\n", out.String()))
}

func TestWriteFullTable(t *testing.T) {
	viper.Set("disable-color", true)
	defer viper.Set("disable-color", false)

	var out bytes.Buffer
	full := NewFullContext()
	full.Output = &out
	full.Format = NewFullTableFormat("")
	full.SetFullTable(model.TableDetail{
		TableUUID: "t-1",
		TableType: "YQL_TABLE_TYPE",
		TableDetails: model.TableDetails{
			TableName: "orders",
			Keyspace:  "shop",
			Columns: []model.ColumnDetails{
				{ColumnOrder: 1, Name: "id", Type: "UUID", IsPartitionKey: true},
				{ColumnOrder: 2, Name: "total", Type: "DOUBLE"},
			},
		},
	})

	assert.NilError(t, full.Write())
	s := out.String()
	assert.Check(t, is.Contains(s, "General"))
	assert.Check(t, is.Contains(s, "Columns (2)"))
	assert.Check(t, is.Contains(s, "Is Partition Key"))
	assert.Check(t, is.Contains(s, "total"))
}

func TestWriteFullTableCustomFormat(t *testing.T) {
	var out bytes.Buffer
	full := NewFullContext()
	full.Output = &out
	full.Format = NewFullTableFormat("{{.TableName}} {{.TTL}}")
	full.SetFullTable(model.TableDetail{TableDetails: model.TableDetails{
		TableName: "orders", TTLInSeconds: 60,
	}})

	assert.NilError(t, full.Write())
	assert.Check(t, is.Equal("orders 60\n", out.String()))
}
