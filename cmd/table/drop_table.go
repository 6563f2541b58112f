/*
 * Copyright (c) YugabyteDB, Inc.
 */

package table

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
)

var dropTableCmd = &cobra.Command{
	Use:     "drop",
	Aliases: []string{"delete", "rm"},
	Short:   "Drop a YugabyteDB Anywhere universe table",
	Long:    "Drop a table from a YugabyteDB Anywhere universe",
	Example: `yba-console table drop --name <universe-name> --table-name <table-name>`,
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		universeName := util.RequireFlag(cmd, "name", "No universe name found to drop table")
		tableName := util.RequireFlag(cmd, "table-name", "No table name found to drop")
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to drop table: %s from universe %s",
				tableName, universeName),
			viper.GetBool("force"))
		if err != nil {
			util.Fatal(err)
		}
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
		task, err := console.Tables.DropTable(ctx, universe.UniverseUUID, t.TableUUID)
		if err != nil {
			util.Fatal(err)
		}
		logrus.Info(fmt.Sprintf("Dropping table %s (%s)\n",
			formatter.Colorize(t.TableName, formatter.GreenColor), t.TableUUID))
		console.FinishTask(ctx, task, "Table drop")
	},
}

func init() {
	dropTableCmd.Flags().SortFlags = false

	dropTableCmd.Flags().String("table-name", "",
		"[Required] The name of the table to be dropped.")
	dropTableCmd.Flags().String("keyspace", "",
		"[Optional] Keyspace of the table.")
	dropTableCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
