/*
 * Copyright (c) YugabyteDB, Inc.
 */

package provider

import (
	"encoding/json"

	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

const (
	defaultRegionListing = "table {{.Name}}\t{{.Code}}\t{{.UUID}}\t{{.ProviderUUID}}"

	providerUUIDHeader = "Provider UUID"
)

// RegionContext for region outputs
type RegionContext struct {
	formatter.HeaderContext
	formatter.Context
	r model.Region
}

// NewRegionFormat for formatting output
func NewRegionFormat(source string) formatter.Format {
	switch source {
	case formatter.TableFormatKey, "":
		format := defaultRegionListing
		return formatter.Format(format)
	default: // custom format or json or pretty
		return formatter.Format(source)
	}
}

// WriteRegions renders the supported regions of the customer's providers
func WriteRegions(ctx formatter.Context, regions []model.Region) error {
	if written, err := ctx.WriteJSON(regions); written {
		return err
	}
	render := func(format func(subContext formatter.SubContext) error) error {
		for _, region := range regions {
			if err := format(&RegionContext{r: region}); err != nil {
				return err
			}
		}
		return nil
	}
	return ctx.Write(NewRegionContext(), render)
}

// NewRegionContext creates a new context for rendering regions
func NewRegionContext() *RegionContext {
	regionCtx := RegionContext{}
	regionCtx.Header = formatter.SubHeaderContext{
		"Name":         formatter.NameHeader,
		"Code":         formatter.CodeHeader,
		"UUID":         formatter.UUIDHeader,
		"ProviderUUID": providerUUIDHeader,
	}
	return &regionCtx
}

// UUID fetches Region UUID
func (r *RegionContext) UUID() string {
	return r.r.UUID
}

// Name fetches Region Name
func (r *RegionContext) Name() string {
	return r.r.Name
}

// Code fetches Region Code
func (r *RegionContext) Code() string {
	return r.r.Code
}

// ProviderUUID of the provider owning the region
func (r *RegionContext) ProviderUUID() string {
	return r.r.ProviderUUID
}

// MarshalJSON function
func (r *RegionContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.r)
}
