/*
 * Copyright (c) YugabyteDB, Inc.
 */

package formatter

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

type row struct {
	HeaderContext
	name, state string
}

func (r *row) Name() string  { return r.name }
func (r *row) State() string { return r.state }

func newRowHeader() *row {
	r := &row{}
	r.Header = SubHeaderContext{"Name": NameHeader, "State": "State"}
	return r
}

func writeRows(ctx Context, rows []*row) error {
	return ctx.Write(newRowHeader(), func(format func(SubContext) error) error {
		for _, r := range rows {
			if err := format(r); err != nil {
				return err
			}
		}
		return nil
	})
}

func TestWriteTable(t *testing.T) {
	var out bytes.Buffer
	ctx := Context{Output: &out, Format: Format("table {{.Name}}\t{{.State}}")}

	assert.NilError(t, writeRows(ctx, []*row{{name: "orders", state: "Live"}}))
	assert.Check(t, is.Equal("Name      State\norders    Live\n", out.String()))
}

func TestWriteCustomFormat(t *testing.T) {
	var out bytes.Buffer
	ctx := Context{Output: &out, Format: Format("{{.Name}}={{.State}}")}

	assert.NilError(t, writeRows(ctx, []*row{{name: "a", state: "x"}, {name: "b", state: "y"}}))
	assert.Check(t, is.Equal("a=x\nb=y\n", out.String()))
}

func TestWriteJSONOnlyForListCommands(t *testing.T) {
	var out bytes.Buffer
	ctx := Context{Output: &out, Format: JSONFormatKey, Command: "describe"}
	written, err := ctx.WriteJSON([]string{"a"})
	assert.NilError(t, err)
	assert.Check(t, !written)

	ctx.Command = "list"
	written, err = ctx.WriteJSON([]string{"a"})
	assert.NilError(t, err)
	assert.Check(t, written)
	assert.Check(t, is.Equal("[\"a\"]\n", out.String()))
}

func TestCommandIsListCommand(t *testing.T) {
	assert.Check(t, Command("list").IsListCommand())
	assert.Check(t, Command("table list").IsListCommand())
	assert.Check(t, !Command("describe").IsListCommand())
	assert.Check(t, !Command("blacklist").IsListCommand())
}

func TestTruncate(t *testing.T) {
	assert.Check(t, is.Equal("", Truncate("abc", 0)))
	assert.Check(t, is.Equal("abc", Truncate("abc", 5)))
	assert.Check(t, is.Equal("abcd...", Truncate("abcdefghij", 7)))
}
