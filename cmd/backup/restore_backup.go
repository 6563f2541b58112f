/*
 * Copyright (c) YugabyteDB, Inc.
 */

package backup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/payload"
)

var restoreBackupCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a table backup into a YugabyteDB Anywhere universe",
	Long:  "Restore a table backup into a YugabyteDB Anywhere universe from a restore request",
	Example: `yba-console backup restore --name <universe-name> ` +
		`--backup-uuid <backup-uuid> --file restore.yaml`,
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		universeName := util.RequireFlag(cmd, "name", "No universe name found to restore into")
		backupUUID := util.RequireFlag(cmd, "backup-uuid", "No backup UUID found to restore")
		if err := util.ValidateUUID("backup-uuid", backupUUID); err != nil {
			util.Fatal(err)
		}
		util.RequireFlag(cmd, "file", "No restore request file found")
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to restore backup %s into universe %s",
				backupUUID, universeName),
			viper.GetBool("force"))
		if err != nil {
			util.Fatal(err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		params, err := payload.Restore(util.MustGetString(cmd, "file"))
		if err != nil {
			util.Fatal(err)
		}
		console := util.MustConsole(ctx)
		universe, err := console.FindUniverse(ctx, util.MustGetString(cmd, "name"))
		if err != nil {
			util.Fatal(err)
		}
		params.UniverseUUID = universe.UniverseUUID
		backupUUID := util.MustGetString(cmd, "backup-uuid")
		task, err := console.Tables.RestoreTableBackup(ctx, universe.UniverseUUID, backupUUID,
			params)
		if err != nil {
			util.Fatal(err)
		}
		logrus.Info(fmt.Sprintf("Restoring %s.%s into universe %s\n", params.Keyspace,
			params.TableName, formatter.Colorize(universe.Name, formatter.GreenColor)))
		console.FinishTask(ctx, task, "Backup restore")
	},
}

func init() {
	restoreBackupCmd.Flags().SortFlags = false

	restoreBackupCmd.Flags().StringP("name", "n", "",
		"[Required] The name of the universe to restore into.")
	restoreBackupCmd.Flags().String("backup-uuid", "",
		"[Required] UUID of the backup to restore.")
	restoreBackupCmd.Flags().String("file", "",
		"[Required] Path of the YAML or JSON restore request.")
	restoreBackupCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
