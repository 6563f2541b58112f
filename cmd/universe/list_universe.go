/*
 * Copyright (c) YugabyteDB, Inc.
 */

package universe

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/universe"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

var listUniverseCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List YugabyteDB Anywhere universes",
	Long:    "List YugabyteDB Anywhere universes",
	Example: `yba-console universe list`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)
		r, err := console.Universe.FetchUniverseList(ctx)
		if err != nil {
			util.Fatal(err)
		}

		// filter by name
		universeName := util.MustGetString(cmd, "name")
		universes := make([]model.Universe, 0, len(r))
		for _, u := range r {
			if universeName == "" || u.Name == universeName {
				universes = append(universes, u)
			}
		}
		if len(universes) < 1 {
			util.EmptyList("universes")
			return
		}
		universeCtx := util.OutputContext("universe list",
			universe.NewUniverseFormat(viper.GetString("output")))
		if err := universe.Write(universeCtx, universes, time.Now()); err != nil {
			util.Fatal(err)
		}
	},
}

func init() {
	listUniverseCmd.Flags().SortFlags = false

	listUniverseCmd.Flags().StringP("name", "n", "", "[Optional] Name of the universe.")
}
