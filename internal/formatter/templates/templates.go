/*
 * Copyright (c) YugabyteDB, Inc.
 */

package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// consoleFunctions are available to every output template, on top of sprig's
var consoleFunctions = template.FuncMap{
	"json": func(v interface{}) string {
		buf := &bytes.Buffer{}
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		enc.Encode(v)
		return strings.TrimSpace(buf.String())
	},
	"lower":    strings.ToLower,
	"upper":    strings.ToUpper,
	"truncate": truncateWidth,
	"bytes":    HumanizeBytes,
	"comma":    humanize.Comma,
	"percent":  Percent,
	"usd":      USD,
}

// HeaderFunctions replace consoleFunctions while rendering the header row, so
// that column names come out untouched.
var HeaderFunctions = template.FuncMap{
	"json":     passThrough,
	"lower":    passThrough,
	"upper":    passThrough,
	"bytes":    passThrough,
	"comma":    passThrough,
	"percent":  passThrough,
	"usd":      passThrough,
	"truncate": func(v string, _ int) string { return v },
}

func passThrough(v string) string {
	return v
}

// Parse creates an anonymous template with the console functions
func Parse(format string) (*template.Template, error) {
	return NewParse("", format)
}

// New creates an empty tagged template with the console functions
func New(tag string) *template.Template {
	return template.New(tag).Funcs(sprig.GenericFuncMap()).Funcs(consoleFunctions)
}

// NewParse creates a tagged template and parses format
func NewParse(tag, format string) (*template.Template, error) {
	return New(tag).Parse(format)
}

// truncateWidth cuts source to a display width, wide runes counting twice
func truncateWidth(source string, width int) string {
	if runewidth.StringWidth(source) <= width {
		return source
	}
	return runewidth.Truncate(source, width, "")
}

// HumanizeBytes renders a byte count in IEC units
func HumanizeBytes(size float64) string {
	if size <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(size))
}

// Percent renders a task completion ratio out of 100
func Percent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}

// USD renders a dollar amount with thousands separators and two decimals
func USD(amount float64) string {
	if amount < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "$" + humanize.FormatFloat("#,###.##", amount)
}
