/*
 * Copyright (c) YugaByte, Inc.
 */

package upgrade

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/upgrade"
	"golang.org/x/term"
)

// upgradeGflagsCmd represents the universe upgrade gflags command
var upgradeGflagsCmd = &cobra.Command{
	Use:   "gflags",
	Short: "GFlags upgrade for a YugabyteDB Anywhere Universe",
	Long: "Rolling gflags upgrade for a YugabyteDB Anywhere Universe. " +
		"The given gflags are added to or edited in the flags the universe runs with, " +
		"a gflag given without a value is removed. " +
		"Without --master-gflags and --tserver-gflags the flags are prompted for.",
	Example: `yba-console universe upgrade gflags --name <universe-name> ` +
		`--master-gflags "max_log_size=256" --tserver-gflags "log_cache_size_limit_mb=128"`,
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		universeName := util.RequireFlag(cmd, "name", "No universe name found to upgrade")
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to upgrade gflags of %s: %s",
				util.UniverseType, universeName),
			viper.GetBool("force"))
		if err != nil {
			util.Fatal(err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		masterRows := upgrade.ParseFlagRows(util.MustGetString(cmd, "master-gflags"))
		tserverRows := upgrade.ParseFlagRows(util.MustGetString(cmd, "tserver-gflags"))
		interactive := len(masterRows) == 0 && len(tserverRows) == 0 &&
			term.IsTerminal(int(os.Stdin.Fd()))

		console, universe, task, err := submitUpgrade(cmd, upgrade.GFlagsModal,
			func(ctx context.Context, console *util.Console) error {
				if interactive {
					return promptFlagRows(ctx, console)
				}
				if err := console.Universe.EditFlagRows(ctx, upgrade.MasterGFlagsField,
					masterRows); err != nil {
					return err
				}
				return console.Universe.EditFlagRows(ctx, upgrade.TServerGFlagsField,
					tserverRows)
			})
		if err != nil {
			util.Fatal(err)
		}
		waitForUpgradeUniverseTask(cmd.Context(), console, universe, task)
	},
}

// promptFlagRows edits the seeded gflag rows of both server types interactively
func promptFlagRows(ctx context.Context, console *util.Console) error {
	values := console.Universe.Props().UpgradeForm
	for _, edit := range []struct {
		field, serverType string
		rows              []upgrade.FlagRow
	}{
		{upgrade.MasterGFlagsField, util.MasterServerType, values.MasterGFlags},
		{upgrade.TServerGFlagsField, util.TServerServerType, values.TserverGFlags},
	} {
		rows, err := util.EditFlagRows(edit.serverType, upgrade.MergeFlagRows(edit.rows, nil))
		if err != nil {
			return err
		}
		if err := console.Universe.SetFlagRows(ctx, edit.field, rows); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	upgradeGflagsCmd.Flags().SortFlags = false

	upgradeGflagsCmd.Flags().String("master-gflags", "",
		"[Optional] Master gflags as comma separated key=value pairs.")
	upgradeGflagsCmd.Flags().String("tserver-gflags", "",
		"[Optional] TServer gflags as comma separated key=value pairs.")
}
