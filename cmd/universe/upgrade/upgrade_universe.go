/*
 * Copyright (c) YugaByte, Inc.
 */

package upgrade

import (
	"github.com/spf13/cobra"
)

// UpgradeUniverseCmd represents the universe upgrade command
var UpgradeUniverseCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Rolling upgrade of a YugabyteDB Anywhere universe",
	Long:  "Rolling upgrade of the software or the gflags of a universe in YugabyteDB Anywhere",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	UpgradeUniverseCmd.Flags().SortFlags = false

	UpgradeUniverseCmd.AddCommand(upgradeSoftwareCmd)
	UpgradeUniverseCmd.AddCommand(upgradeGflagsCmd)

	UpgradeUniverseCmd.PersistentFlags().StringP("name", "n", "",
		"[Required] The name of the universe to be upgraded.")
	UpgradeUniverseCmd.PersistentFlags().Int64("delay", 18,
		"[Optional] Delay between server restarts (in seconds).")
	UpgradeUniverseCmd.PersistentFlags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
