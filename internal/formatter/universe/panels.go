/*
 * Copyright (c) YugabyteDB, Inc.
 */

package universe

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/panels"
)

func newPanel(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	return table
}

func writeJSON(out io.Writer, format formatter.Format, v interface{}) error {
	var b []byte
	var err error
	if format.IsPrettyJSON() {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = out.Write(append(b, '\n'))
	return err
}

// WriteStats renders the highlighted stats panel. A hidden panel writes nothing.
func WriteStats(ctx formatter.Context, stats panels.HighlightedStats) error {
	if ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON() {
		return writeJSON(ctx.Output, ctx.Format, stats)
	}
	switch stats.State {
	case panels.PanelHidden:
		return nil
	case panels.PanelLoading:
		_, err := fmt.Fprintln(ctx.Output, "Loading...")
		return err
	}
	table := newPanel(ctx.Output, []string{"Universes", "Nodes", "Per Month"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Universes),
		fmt.Sprintf("%d", stats.Nodes),
		stats.FormattedCost,
	})
	table.Render()
	return nil
}

// WriteConnect renders the connection details of a universe
func WriteConnect(ctx formatter.Context, items []panels.DescriptionItem) error {
	if ctx.Format.IsJSON() || ctx.Format.IsPrettyJSON() {
		return writeJSON(ctx.Output, ctx.Format, items)
	}
	table := newPanel(ctx.Output, []string{"Name", "Data"})
	for _, item := range items {
		data := item.Data
		if item.Code {
			data = formatter.Colorize(data, formatter.BlueColor)
		}
		table.Append([]string{item.Name, data})
	}
	table.Render()
	return nil
}
