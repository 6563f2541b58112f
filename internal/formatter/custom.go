/*
 * Copyright (c) YugabyteDB, Inc.
 */

package formatter

// SubContext is rendered once per listed item. Its header labels the table columns.
type SubContext interface {
	FullHeader() interface{}
}

// SubHeaderContext maps the fields used by a table format to their column label
type SubHeaderContext map[string]string

// HeaderContext is embedded by the per-entity contexts to carry their header
type HeaderContext struct {
	Header interface{}
}

// FullHeader is the header rendered above the rows
func (c *HeaderContext) FullHeader() interface{} {
	return c.Header
}
