/*
 * Copyright (c) YugabyteDB, Inc.
 */

package columntype

import (
	"encoding/json"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

const (
	defaultColumnTypeListing = "table {{.Category}}\t{{.Type}}"

	categoryHeader = "Category"

	// PrimitiveCategory of a column type
	PrimitiveCategory = "Primitive"
	// CollectionCategory of a column type
	CollectionCategory = "Collection"
)

// Context for column type outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	category string
	name     string
}

// NewColumnTypeFormat for formatting output
func NewColumnTypeFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultColumnTypeListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the primitive types followed by the collection types
func Write(ctx formatter.Context, types model.ColumnTypes) error {
	if written, err := ctx.WriteJSON(types); written {
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, p := range types.Primitives {
			if err := format(&Context{category: PrimitiveCategory, name: p}); err != nil {
				return err
			}
		}
		for _, c := range types.Collections {
			if err := format(&Context{category: CollectionCategory, name: c}); err != nil {
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewColumnTypeContext(), render)
}

// NewColumnTypeContext creates a new context for rendering column types
func NewColumnTypeContext() *Context {
	typeCtx := Context{}
	typeCtx.Header = formatter.SubHeaderContext{
		"Category": categoryHeader,
		"Type":     formatter.TypeHeader,
	}
	return &typeCtx
}

// Category of the column type
func (c *Context) Category() string {
	return c.category
}

// Type name
func (c *Context) Type() string {
	return c.name
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"category": c.category, "type": c.name})
}
