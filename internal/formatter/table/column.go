/*
 * Copyright (c) YugabyteDB, Inc.
 */

package table

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

const (
	defaultColumn = "table {{.ColumnOrder}}\t{{.Name}}\t{{.Type}}\t{{.KeyType}}" +
		"\t{{.ValueType}}\t{{.IsPartitionKey}}\t{{.IsClusteringKey}}\t{{.SortOrder}}"

	columnOrderHeader     = "Order"
	keyTypeHeader         = "Key Type"
	valueTypeHeader       = "Value Type"
	isPartitionKeyHeader  = "Is Partition Key"
	isClusteringKeyHeader = "Is Clustering Key"
	sortOrderHeader       = "Sort Order"
)

// ColumnContext for column outputs
type ColumnContext struct {
	formatter.HeaderContext
	formatter.Context
	c model.ColumnDetails
}

// WriteColumns renders the columns of a table
func WriteColumns(ctx formatter.Context, columns []model.ColumnDetails) error {
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, column := range columns {
			if err := format(&ColumnContext{c: column}); err != nil {
				logrus.Debugf("Error rendering column: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewColumnContext(), render)
}

// NewColumnContext creates a new context for rendering columns
func NewColumnContext() *ColumnContext {
	columnCtx := ColumnContext{}
	columnCtx.Header = formatter.SubHeaderContext{
		"ColumnOrder":     columnOrderHeader,
		"Name":            formatter.NameHeader,
		"Type":            formatter.TypeHeader,
		"KeyType":         keyTypeHeader,
		"ValueType":       valueTypeHeader,
		"IsPartitionKey":  isPartitionKeyHeader,
		"IsClusteringKey": isClusteringKeyHeader,
		"SortOrder":       sortOrderHeader,
	}
	return &columnCtx
}

// ColumnOrder function
func (c *ColumnContext) ColumnOrder() string {
	return fmt.Sprintf("%d", c.c.ColumnOrder)
}

// Name function
func (c *ColumnContext) Name() string {
	return c.c.Name
}

// Type function
func (c *ColumnContext) Type() string {
	return c.c.Type
}

// KeyType function
func (c *ColumnContext) KeyType() string {
	return c.c.KeyType
}

// ValueType function
func (c *ColumnContext) ValueType() string {
	return c.c.ValueType
}

// IsPartitionKey function
func (c *ColumnContext) IsPartitionKey() string {
	return fmt.Sprintf("%t", c.c.IsPartitionKey)
}

// IsClusteringKey function
func (c *ColumnContext) IsClusteringKey() string {
	return fmt.Sprintf("%t", c.c.IsClusteringKey)
}

// SortOrder function
func (c *ColumnContext) SortOrder() string {
	return c.c.SortOrder
}

// MarshalJSON function
func (c *ColumnContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.c)
}
