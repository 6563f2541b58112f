/*
 * Copyright (c) YugabyteDB, Inc.
 */

package formatter

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/templates"
)

// Format keys used to specify certain kinds of output formats
const (
	TableFormatKey  = "table"
	PrettyFormatKey = "pretty"
	JSONFormatKey   = "json"

	jsonFormat   = "{{json .}}"
	prettyFormat = "{{. | toPrettyJson}}"

	// NameHeader
	NameHeader = "Name"
	// TypeHeader
	TypeHeader = "Type"
	// CodeHeader
	CodeHeader = "Code"
	// UUIDHeader
	UUIDHeader = "UUID"
	// StatusHeader
	StatusHeader = "Status"
	// ProviderHeader
	ProviderHeader = "Provider"

	// GreenColor for colored output
	GreenColor = "green"
	// RedColor for colored output
	RedColor = "red"
	// BlueColor for colored output
	BlueColor = "blue"
	// YellowColor for colored output
	YellowColor = "yellow"
)

// Format is the format string rendered using the Context
type Format string

// IsTable returns true if the format is a table-type format
func (f Format) IsTable() bool {
	return strings.HasPrefix(string(f), TableFormatKey)
}

// IsJSON returns true if the format is the json format
func (f Format) IsJSON() bool {
	return string(f) == JSONFormatKey
}

// IsPrettyJSON returns true if the format is the pretty json format
func (f Format) IsPrettyJSON() bool {
	return string(f) == PrettyFormatKey
}

// Command is the name of the command whose output is rendered
type Command string

// IsListCommand is true for listing commands, whose json output is a single array
func (c Command) IsListCommand() bool {
	return c == "list" || strings.HasSuffix(string(c), " list")
}

// Context contains information required by the formatter to print the output as desired.
type Context struct {
	// Output is the output stream to which the formatted string is written.
	Output io.Writer
	// Format is used to choose table, json or custom format for the output.
	Format Format
	// Command rendering the output
	Command Command

	// internal element
	finalFormat string
	// ContextHeader to avoid ambiguity between HeaderContext.Header and Context.Header
	ContextHeader interface{}
	// Buffer
	Buffer *bytes.Buffer
}

// PreFormat function
func (c *Context) PreFormat() {
	c.finalFormat = string(c.Format)
	switch {
	case c.Format.IsTable():
		c.finalFormat = c.finalFormat[len(TableFormatKey):]
	case c.Format.IsJSON():
		c.finalFormat = jsonFormat
	case c.Format.IsPrettyJSON():
		c.finalFormat = prettyFormat
	}

	c.finalFormat = strings.Trim(c.finalFormat, " ")
	r := strings.NewReplacer(`\t`, "\t", `\n`, "\n")
	c.finalFormat = r.Replace(c.finalFormat)
}

// ParseFormat function
func (c *Context) ParseFormat() (*template.Template, error) {
	tmpl, err := templates.Parse(c.finalFormat)
	if err != nil {
		return tmpl, errors.Wrap(err, "template parsing error")
	}
	return tmpl, err
}

// PostFormat writes the header and the buffered rows, aligned for table formats
func (c *Context) PostFormat(tmpl *template.Template, subContext SubContext) error {
	if !c.Format.IsTable() {
		_, err := c.Buffer.WriteTo(c.Output)
		return err
	}
	t := tabwriter.NewWriter(c.Output, 10, 1, 3, ' ', 0)
	header := bytes.NewBufferString("")
	if err := tmpl.Funcs(templates.HeaderFunctions).Execute(header,
		subContext.FullHeader()); err != nil {
		return errors.Wrap(err, "template header error")
	}
	header.WriteTo(t)
	t.Write([]byte("\n"))
	c.Buffer.WriteTo(t)
	return t.Flush()
}

// ContextFormat function
func (c *Context) ContextFormat(tmpl *template.Template, subContext SubContext) error {
	if err := tmpl.Execute(c.Buffer, subContext); err != nil {
		return errors.Wrap(err, "template parsing error")
	}
	if c.Format.IsTable() && c.ContextHeader != nil {
		c.ContextHeader = subContext.FullHeader()
	}
	c.Buffer.WriteString("\n")
	return nil
}

// SubFormat is a function type accepted by Write()
type SubFormat func(func(SubContext) error) error

// Write the template to the Buffer using this Context
func (c *Context) Write(sub SubContext, f SubFormat) error {
	c.Buffer = bytes.NewBufferString("")
	c.PreFormat()

	tmpl, err := c.ParseFormat()
	if err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}

	subFormat := func(subContext SubContext) error {
		return c.ContextFormat(tmpl, subContext)
	}
	if err := f(subFormat); err != nil {
		logrus.Errorf("%s", err.Error())
		return err
	}

	return c.PostFormat(tmpl, sub)
}

// WriteJSON renders v as a single json document when the format asks for json
// and the command lists entities. It reports whether anything was written.
func (c *Context) WriteJSON(v interface{}) (bool, error) {
	if !(c.Format.IsJSON() || c.Format.IsPrettyJSON()) || !c.Command.IsListCommand() {
		return false, nil
	}
	var output []byte
	var err error
	if c.Format.IsPrettyJSON() {
		output, err = json.MarshalIndent(v, "", "  ")
	} else {
		output, err = json.Marshal(v)
	}
	if err != nil {
		logrus.Errorf("Error marshaling output to json: %v\n", err)
		return true, err
	}
	_, err = c.Output.Write(append(output, '\n'))
	return true, err
}

// Colorize the message accoring the colors var
func Colorize(message string, colors string) string {
	// If Colors is disable return the message as it is.
	if viper.GetBool("disable-color") {
		color.NoColor = true
	}
	switch colors {
	case GreenColor:
		return color.GreenString(message)
	case RedColor:
		return color.RedString(message)
	case BlueColor:
		return color.BlueString(message)
	case YellowColor:
		return color.YellowString(message)
	default:
		return message
	}
}

// Truncate the text to length display cells, marking the cut with an ellipsis
func Truncate(text string, length int) string {
	if length <= 0 || len(text) == 0 {
		return ""
	}
	return runewidth.Truncate(text, length, "...")
}
