/*
 * Copyright (c) YugabyteDB, Inc.
 */

package table

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/table"
)

var describeTableCmd = &cobra.Command{
	Use:     "describe",
	Aliases: []string{"get"},
	Short:   "Describe a YugabyteDB Anywhere universe table",
	Long:    "Describe a table in a YugabyteDB Anywhere universe",
	Example: `yba-console table describe --name <universe-name> --table-name <table-name>`,
	PreRun: func(cmd *cobra.Command, args []string) {
		util.RequireFlag(cmd, "name", "No universe name found to describe table")
		util.RequireFlag(cmd, "table-name", "No table name found to describe")
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)

		universe, err := console.FindUniverse(ctx, util.MustGetString(cmd, "name"))
		if err != nil {
			util.Fatal(err)
		}
		t, err := console.FindTable(ctx, universe.UniverseUUID,
			util.MustGetString(cmd, "keyspace"), util.MustGetString(cmd, "table-name"))
		if err != nil {
			util.Fatal(err)
		}
		detail, err := console.Tables.FetchTableDetail(ctx, universe.UniverseUUID, t.TableUUID)
		if err != nil {
			util.Fatal(err)
		}
		defer console.Tables.ResetTableDetail(ctx)

		fullTableContext := *table.NewFullContext()
		fullTableContext.Context = util.OutputContext("table describe",
			table.NewFullTableFormat(viper.GetString("output")))
		fullTableContext.SetFullTable(detail)
		if err := fullTableContext.Write(); err != nil {
			util.Fatal(err)
		}
	},
}

func init() {
	describeTableCmd.Flags().SortFlags = false

	describeTableCmd.Flags().String("table-name", "",
		"[Required] The name of the table to be described.")
	describeTableCmd.Flags().String("keyspace", "",
		"[Optional] Keyspace of the table, when several keyspaces hold the name.")
}
