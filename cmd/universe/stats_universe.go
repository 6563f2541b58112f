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
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/panels"
)

var statsUniverseCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Summarize YugabyteDB Anywhere universes",
	Long:    "Show the universe count, the node count and the monthly cost of all universes",
	Example: `yba-console universe stats`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)
		// a failed fetch hides the panel
		if _, err := console.Universe.FetchUniverseList(ctx); err != nil {
			util.Fatal(err)
		}
		stats := panels.NewHighlightedStats(console.Universe.Props().Universe.UniverseList,
			time.Now())
		statsCtx := util.OutputContext("universe stats",
			formatter.Format(viper.GetString("output")))
		if err := universe.WriteStats(statsCtx, stats); err != nil {
			util.Fatal(err)
		}
	},
}
