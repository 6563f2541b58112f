/*
 * Copyright (c) YugaByte, Inc.
 */

package upgrade

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/upgrade"
	"golang.org/x/exp/slices"
)

// upgradeSoftwareCmd represents the universe upgrade software command
var upgradeSoftwareCmd = &cobra.Command{
	Use:   "software",
	Short: "Software upgrade for a YugabyteDB Anywhere Universe",
	Long:  "Rolling software upgrade for a YugabyteDB Anywhere Universe",
	Example: `yba-console universe upgrade software --name <universe-name> ` +
		`--yb-db-version <version>`,
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		universeName := util.RequireFlag(cmd, "name", "No universe name found to upgrade")
		ybdbVersion := util.RequireFlag(cmd, "yb-db-version",
			"No YugabyteDB software version found to upgrade")
		if _, err := util.IsYBVersion(ybdbVersion); err != nil {
			util.Fatal(fmt.Errorf("%s is not a valid Yugabyte version string", ybdbVersion))
		}
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to upgrade %s: %s to version %s",
				util.UniverseType, universeName, ybdbVersion),
			viper.GetBool("force"))
		if err != nil {
			util.Fatal(err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ybdbVersion := util.MustGetString(cmd, "yb-db-version")
		console, universe, task, err := submitUpgrade(cmd, upgrade.SoftwareUpgradesModal,
			func(ctx context.Context, console *util.Console) error {
				versions, err := console.Universe.FetchSoftwareVersions(ctx)
				if err != nil {
					return err
				}
				if len(versions) > 0 && !slices.Contains(versions, ybdbVersion) {
					return fmt.Errorf("version %s is not available, available versions: %v",
						ybdbVersion, versions)
				}
				return console.Universe.ChangeUpgradeField(ctx, upgrade.SoftwareVersionField,
					ybdbVersion)
			})
		if err != nil {
			util.Fatal(err)
		}
		waitForUpgradeUniverseTask(cmd.Context(), console, universe, task)
	},
}

func init() {
	upgradeSoftwareCmd.Flags().SortFlags = false

	upgradeSoftwareCmd.Flags().String("yb-db-version", "",
		"[Required] Target YugabyteDB software version.")
}
