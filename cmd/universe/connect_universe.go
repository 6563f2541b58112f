/*
 * Copyright (c) YugabyteDB, Inc.
 */

package universe

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/universe"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/panels"
)

var connectUniverseCmd = &cobra.Command{
	Use:     "connect",
	Short:   "Show how to connect to a YugabyteDB Anywhere universe",
	Long:    "Show the masters endpoint of a universe and a load test command using it",
	Example: `yba-console universe connect --name <universe-name>`,
	PreRun: func(cmd *cobra.Command, args []string) {
		util.RequireFlag(cmd, "name", "No universe name found to connect to")
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)
		u, err := console.FindUniverse(ctx, util.MustGetString(cmd, "name"))
		if err != nil {
			util.Fatal(err)
		}
		items := panels.ConnectString(u, console.API.CustomerUUID, console.API.RootURL())
		connectCtx := util.OutputContext("universe connect",
			formatter.Format(viper.GetString("output")))
		if err := universe.WriteConnect(connectCtx, items); err != nil {
			util.Fatal(err)
		}
	},
}

func init() {
	connectUniverseCmd.Flags().SortFlags = false

	connectUniverseCmd.Flags().StringP("name", "n", "",
		"[Required] The name of the universe.")
}
