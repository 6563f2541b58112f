/*
 * Copyright (c) YugabyteDB, Inc.
 */

package table

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/payload"
)

var createTableCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a YugabyteDB Anywhere universe table",
	Long: "Create a table in a YugabyteDB Anywhere universe from a YAML or JSON " +
		"table definition",
	Example: `yba-console table create --name <universe-name> --file table.yaml`,
	PreRun: func(cmd *cobra.Command, args []string) {
		util.RequireFlag(cmd, "name", "No universe name found to create table")
		util.RequireFlag(cmd, "file", "No table definition file found")
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		definition, err := payload.TableDefinition(util.MustGetString(cmd, "file"))
		if err != nil {
			util.Fatal(err)
		}
		console := util.MustConsole(ctx)
		universe, err := console.FindUniverse(ctx, util.MustGetString(cmd, "name"))
		if err != nil {
			util.Fatal(err)
		}
		task, err := console.Tables.CreateTable(ctx, universe.UniverseUUID, definition)
		if err != nil {
			util.Fatal(err)
		}
		logrus.Info(fmt.Sprintf("Creating table %s in universe %s (%s)\n",
			formatter.Colorize(definition.TableName, formatter.GreenColor),
			universe.Name, universe.UniverseUUID))
		console.FinishTask(ctx, task, "Table create")
	},
}

func init() {
	createTableCmd.Flags().SortFlags = false

	createTableCmd.Flags().StringP("file", "f", "",
		"[Required] Path of the YAML or JSON table definition.")
}
