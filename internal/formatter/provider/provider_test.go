/*
 * Copyright (c) YugabyteDB, Inc.
 */

package provider

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"gotest.tools/v3/assert"
)

func TestWriteProviders(t *testing.T) {
	color.NoColor = true
	out := bytes.NewBufferString("")
	ctx := formatter.Context{Output: out, Format: NewProviderFormat("{{.Name}} {{.Status}}")}
	err := Write(ctx, []model.Provider{
		{UUID: "p-1", Name: "aws-east", Code: "aws", Active: true},
		{UUID: "p-2", Name: "gcp-west", Code: "gcp"},
	})
	assert.NilError(t, err)
	assert.Equal(t, out.String(), "aws-east Active\ngcp-west Inactive\n")
}

func TestWriteProvidersJSONList(t *testing.T) {
	out := bytes.NewBufferString("")
	ctx := formatter.Context{
		Output:  out,
		Format:  NewProviderFormat(formatter.JSONFormatKey),
		Command: "provider list",
	}
	err := Write(ctx, []model.Provider{{UUID: "p-1", Name: "aws-east", Code: "aws"}})
	assert.NilError(t, err)
	assert.Equal(t, out.String(),
		`[{"uuid":"p-1","name":"aws-east","code":"aws","active":false}]`+"\n")
}

func TestWriteRegions(t *testing.T) {
	out := bytes.NewBufferString("")
	ctx := formatter.Context{Output: out, Format: NewRegionFormat("{{.Code}}:{{.ProviderUUID}}")}
	err := WriteRegions(ctx, []model.Region{
		{UUID: "r-1", Code: "us-east-1", Name: "US East", ProviderUUID: "p-1"},
	})
	assert.NilError(t, err)
	assert.Equal(t, out.String(), "us-east-1:p-1\n")
}
