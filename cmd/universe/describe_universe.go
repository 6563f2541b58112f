/*
 * Copyright (c) YugabyteDB, Inc.
 */

package universe

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/universe"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/panels"
)

var describeUniverseCmd = &cobra.Command{
	Use:     "describe",
	Aliases: []string{"get"},
	Short:   "Describe a YugabyteDB Anywhere universe",
	Long:    "Describe a universe in YugabyteDB Anywhere",
	Example: `yba-console universe describe --name <universe-name>`,
	PreRun: func(cmd *cobra.Command, args []string) {
		util.RequireFlag(cmd, "name", "No universe name found to describe")
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)
		u, err := console.FindUniverse(ctx, util.MustGetString(cmd, "name"))
		if err != nil {
			util.Fatal(err)
		}

		universeCtx := util.OutputContext("universe describe",
			universe.NewUniverseFormat(viper.GetString("output")))
		if err := universe.Write(universeCtx, []model.Universe{u}, time.Now()); err != nil {
			util.Fatal(err)
		}
		if !util.IsOutputType(formatter.TableFormatKey) {
			return
		}
		items := panels.ConnectString(u, console.API.CustomerUUID, console.API.RootURL())
		connectCtx := util.OutputContext("universe describe", formatter.TableFormatKey)
		if err := universe.WriteConnect(connectCtx, items); err != nil {
			util.Fatal(err)
		}
	},
}

func init() {
	describeUniverseCmd.Flags().SortFlags = false

	describeUniverseCmd.Flags().StringP("name", "n", "",
		"[Required] The name of the universe to be described.")
}
