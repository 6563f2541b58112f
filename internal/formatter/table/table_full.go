/*
 * Copyright (c) YugabyteDB, Inc.
 */

package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

const (
	defaultFullTable = "table {{.TableName}}\t{{.TableUUID}}\t{{.TableType}}" +
		"\t{{.KeySpace}}\t{{.TTL}}"

	ttlHeader = "TTL (seconds)"
)

// FullContext to render table details output
type FullContext struct {
	formatter.HeaderContext
	formatter.Context
	t model.TableDetail
}

// SetFullTable initializes the context with the table data
func (ft *FullContext) SetFullTable(table model.TableDetail) {
	ft.t = table
}

// NewFullTableFormat for formatting output
func NewFullTableFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultFullTable
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write populates the output table to be displayed in the command line
func (ft *FullContext) Write() error {
	if !ft.Format.IsTable() {
		return ft.Context.Write(NewFullContext(), func(
			format func(subContext formatter.SubContext) error) error {
			return format(&FullContext{t: ft.t})
		})
	}

	// Section 1
	tmpl, err := ft.startSubsection(defaultFullTable)
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	ft.Output.Write([]byte(formatter.Colorize("General", formatter.GreenColor)))
	ft.Output.Write([]byte("\n"))
	if err := ft.ContextFormat(tmpl, &FullContext{t: ft.t}); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}
	if err := ft.PostFormat(tmpl, NewFullContext()); err != nil {
		return err
	}

	// Columns subSection
	columns := ft.t.TableDetails.Columns
	logrus.Debugf("Number of Columns: %d", len(columns))
	ft.subSection(fmt.Sprintf("Columns (%d)", len(columns)))
	return WriteColumns(formatter.Context{
		Output: ft.Output,
		Format: formatter.Format(defaultColumn),
	}, columns)
}

func (ft *FullContext) startSubsection(format string) (*template.Template, error) {
	ft.Buffer = bytes.NewBufferString("")
	ft.ContextHeader = ""
	ft.Format = formatter.Format(format)
	ft.PreFormat()

	return ft.ParseFormat()
}

func (ft *FullContext) subSection(name string) {
	ft.Output.Write([]byte("\n"))
	ft.Output.Write([]byte(formatter.Colorize(name, formatter.GreenColor)))
	ft.Output.Write([]byte("\n"))
}

// NewFullContext creates a new context for rendering table details
func NewFullContext() *FullContext {
	tableCtx := FullContext{}
	tableCtx.Header = formatter.SubHeaderContext{
		"TableName": tableNameHeader,
		"TableUUID": tableUUIDHeader,
		"TableType": tableTypeHeader,
		"KeySpace":  keySpaceHeader,
		"TTL":       ttlHeader,
	}
	return &tableCtx
}

// TableName of the table
func (ft *FullContext) TableName() string {
	return ft.t.TableDetails.TableName
}

// TableUUID of the table
func (ft *FullContext) TableUUID() string {
	return ft.t.TableUUID
}

// TableType of the table
func (ft *FullContext) TableType() string {
	return ft.t.TableType
}

// KeySpace of the table
func (ft *FullContext) KeySpace() string {
	return ft.t.TableDetails.Keyspace
}

// TTL of the table rows
func (ft *FullContext) TTL() string {
	if ft.t.TableDetails.TTLInSeconds <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", ft.t.TableDetails.TTLInSeconds)
}

// MarshalJSON function
func (ft *FullContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(ft.t)
}
