/*
 * Copyright (c) YugabyteDB, Inc.
 */

package universe

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
)

var metricsUniverseCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Query metrics of a YugabyteDB Anywhere universe",
	Long:  "Query metrics of a YugabyteDB Anywhere universe over a recent period",
	Example: `yba-console universe metrics --name <universe-name> ` +
		`--metrics cpu_usage,disk_iops_by_node --period 6 --unit hour`,
	PreRun: func(cmd *cobra.Command, args []string) {
		util.RequireFlag(cmd, "name", "No universe name found to query metrics")
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)
		u, err := console.FindUniverse(ctx, util.MustGetString(cmd, "name"))
		if err != nil {
			util.Fatal(err)
		}
		period := util.MustGetString(cmd, "period")
		unit := util.MustGetString(cmd, "unit")
		if _, err := console.Graph.ChangeGraphQueryPeriod(ctx, period, unit,
			time.Now()); err != nil {
			util.Fatal(err)
		}
		names, err := cmd.Flags().GetStringSlice("metrics")
		if err != nil {
			util.Fatal(err)
		}
		r, err := console.Graph.QueryMetrics(ctx, u.UniverseUUID, names)
		if err != nil {
			util.Fatal(err)
		}

		var b []byte
		if util.IsOutputType(formatter.JSONFormatKey) {
			b, err = json.Marshal(r)
		} else {
			b, err = json.MarshalIndent(r, "", "  ")
		}
		if err != nil {
			util.Fatal(err)
		}
		fmt.Fprintln(os.Stdout, string(b))
	},
}

func init() {
	metricsUniverseCmd.Flags().SortFlags = false

	metricsUniverseCmd.Flags().StringP("name", "n", "",
		"[Required] The name of the universe.")
	metricsUniverseCmd.Flags().StringSlice("metrics", []string{"cpu_usage"},
		"[Optional] Comma separated metric names.")
	metricsUniverseCmd.Flags().String("period", "1",
		"[Optional] Number of units of time to query, counted back from now.")
	metricsUniverseCmd.Flags().String("unit", "hour",
		"[Optional] Unit of the period. Allowed values: min, hour, day, week.")
}
