/*
 * Copyright (c) YugabyteDB, Inc.
 */

package table

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/actions"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/table"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

var listTableCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List YugabyteDB Anywhere universe tables",
	Long:    "List YugabyteDB Anywhere universe tables",
	Example: `yba-console table list --name <universe-name>`,
	PreRun: func(cmd *cobra.Command, args []string) {
		util.RequireFlag(cmd, "name", "No universe name found to list tables")
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)

		universe, err := console.FindUniverse(ctx, util.MustGetString(cmd, "name"))
		if err != nil {
			util.Fatal(err)
		}
		r, err := console.Tables.FetchUniverseTables(ctx, universe.UniverseUUID)
		if err != nil {
			util.Fatal(err)
		}
		if util.MustGetBool(cmd, "grid") {
			console.Tables.ToggleTableView(ctx, actions.GridView)
		}

		tableName := util.MustGetString(cmd, "table-name")
		tables := make([]model.Table, 0, len(r))
		for _, t := range r {
			if tableName == "" || t.TableName == tableName {
				tables = append(tables, t)
			}
		}
		if len(tables) < 1 {
			util.EmptyList("universe table")
			return
		}

		format := table.NewTableFormat(viper.GetString("output"))
		if console.Tables.Props().Tables.CurrentTableView == actions.GridView &&
			util.IsOutputType(formatter.TableFormatKey) {
			format = table.NewTableFormat(table.GridFormat)
		}
		if err := table.Write(util.OutputContext("table list", format), tables); err != nil {
			util.Fatal(err)
		}
	},
}

func init() {
	listTableCmd.Flags().SortFlags = false

	listTableCmd.Flags().String("table-name", "",
		"[Optional] Table name to be listed.")
	listTableCmd.Flags().Bool("grid", false,
		"[Optional] Show the tables in the compact grid view. (default false)")
}
