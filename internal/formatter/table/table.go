/*
 * Copyright (c) YugabyteDB, Inc.
 */

package table

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/templates"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

const (
	defaultTableListing = "table {{.TableName}}\t{{.TableUUID}}" +
		"\t{{.TableType}}\t{{.KeySpace}}\t{{.SizeBytes}}\t{{.IsIndexTable}}"

	// GridFormat is the compact view of a table listing
	GridFormat = "table {{.KeySpace}}\t{{.TableName}}\t{{.SizeBytes}}"

	tableNameHeader    = "Table Name"
	tableUUIDHeader    = "Table UUID"
	tableTypeHeader    = "Table Type"
	keySpaceHeader     = "KeySpace"
	sizeBytesHeader    = "SST size"
	isIndexTableHeader = "Index"
)

// Context for table outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	t model.Table
}

// NewTableFormat for formatting output
func NewTableFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultTableListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Table
func Write(ctx formatter.Context, tables []model.Table) error {
	if written, err := ctx.WriteJSON(tables); written {
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, table := range tables {
			err := format(&Context{t: table})
			if err != nil {
				logrus.Debugf("Error rendering table: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewTableContext(), render)
}

// NewTableContext creates a new context for rendering table
func NewTableContext() *Context {
	tableCtx := Context{}
	tableCtx.Header = formatter.SubHeaderContext{
		"TableName":    tableNameHeader,
		"TableUUID":    tableUUIDHeader,
		"TableType":    tableTypeHeader,
		"KeySpace":     keySpaceHeader,
		"SizeBytes":    sizeBytesHeader,
		"IsIndexTable": isIndexTableHeader,
	}
	return &tableCtx
}

// TableName of the table
func (c *Context) TableName() string {
	return c.t.TableName
}

// TableUUID of the table
func (c *Context) TableUUID() string {
	return c.t.TableUUID
}

// TableType returns the table type of the table
func (c *Context) TableType() string {
	return c.t.TableType
}

// KeySpace returns the KeySpace of the table
func (c *Context) KeySpace() string {
	return c.t.KeySpace
}

// SizeBytes returns the size of the table
func (c *Context) SizeBytes() string {
	return templates.HumanizeBytes(c.t.SizeBytes)
}

// IsIndexTable returns true if the table is an index
func (c *Context) IsIndexTable() string {
	return fmt.Sprintf("%t", c.t.IsIndexTable)
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.t)
}
