/*
 * Copyright (c) YugabyteDB, Inc.
 */

package provider

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

const (
	defaultProviderListing = "table {{.Name}}\t{{.Code}}\t{{.UUID}}\t{{.Status}}"

	activeStatus   = "Active"
	inactiveStatus = "Inactive"
)

// Context for provider outputs
type Context struct {
	formatter.HeaderContext
	formatter.Context
	p model.Provider
}

// NewProviderFormat for formatting output
func NewProviderFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultProviderListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// Write renders the context for a list of Providers
func Write(ctx formatter.Context, providers []model.Provider) error {
	if written, err := ctx.WriteJSON(providers); written {
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, provider := range providers {
			err := format(&Context{p: provider})
			if err != nil {
				logrus.Debugf("Error rendering provider: %v", err)
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewProviderContext(), render)
}

// NewProviderContext creates a new context for rendering provider
func NewProviderContext() *Context {
	providerCtx := Context{}
	providerCtx.Header = formatter.SubHeaderContext{
		"Name":   formatter.NameHeader,
		"UUID":   formatter.UUIDHeader,
		"Status": formatter.StatusHeader,
		"Code":   formatter.CodeHeader,
	}
	return &providerCtx
}

// UUID fetches Provider UUID
func (c *Context) UUID() string {
	return c.p.UUID
}

// Name fetches Provider Name
func (c *Context) Name() string {
	return c.p.Name
}

// Code fetches Provider Code
func (c *Context) Code() string {
	return c.p.Code
}

// Status fetches the Provider Status
func (c *Context) Status() string {
	if c.p.Active {
		return formatter.Colorize(activeStatus, formatter.GreenColor)
	}
	return formatter.Colorize(inactiveStatus, formatter.YellowColor)
}

// MarshalJSON function
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.p)
}
