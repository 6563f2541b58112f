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
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/payload"
)

var backupTableCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up a YugabyteDB Anywhere universe table",
	Long:  "Create a backup of a table of a YugabyteDB Anywhere universe",
	Example: `yba-console table backup --name <universe-name> --table-name <table-name> ` +
		`--storage-config-uuid <storage-config-uuid>`,
	PreRun: func(cmd *cobra.Command, args []string) {
		util.RequireFlag(cmd, "name", "No universe name found to back up table")
		if util.MustGetString(cmd, "file") != "" {
			return
		}
		util.RequireFlag(cmd, "table-name", "No table name found to back up")
		storageConfig := util.RequireFlag(cmd, "storage-config-uuid",
			"No storage configuration found to back up table")
		if err := util.ValidateUUID("storage-config-uuid", storageConfig); err != nil {
			util.Fatal(err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		var params model.BackupParams
		if file := util.MustGetString(cmd, "file"); file != "" {
			var err error
			if params, err = payload.Backup(file); err != nil {
				util.Fatal(err)
			}
		} else {
			params = model.BackupParams{
				TableName:         util.MustGetString(cmd, "table-name"),
				Keyspace:          util.MustGetString(cmd, "keyspace"),
				StorageConfigUUID: util.MustGetString(cmd, "storage-config-uuid"),
			}
		}

		console := util.MustConsole(ctx)
		universe, err := console.FindUniverse(ctx, util.MustGetString(cmd, "name"))
		if err != nil {
			util.Fatal(err)
		}
		t, err := console.FindTable(ctx, universe.UniverseUUID, params.Keyspace, params.TableName)
		if err != nil {
			util.Fatal(err)
		}
		params.TableUUID = t.TableUUID
		if params.Keyspace == "" {
			params.Keyspace = t.KeySpace
		}
		task, err := console.Tables.CreateTableBackup(ctx, universe.UniverseUUID, t.TableUUID,
			params)
		if err != nil {
			util.Fatal(err)
		}
		logrus.Info(fmt.Sprintf("Backing up table %s.%s\n", params.Keyspace,
			formatter.Colorize(t.TableName, formatter.GreenColor)))
		console.FinishTask(ctx, task, "Table backup")
	},
}

func init() {
	backupTableCmd.Flags().SortFlags = false

	backupTableCmd.Flags().String("table-name", "",
		"[Required] The name of the table to back up.")
	backupTableCmd.Flags().String("keyspace", "",
		"[Optional] Keyspace of the table.")
	backupTableCmd.Flags().String("storage-config-uuid", "",
		"[Required] UUID of the storage configuration holding the backup.")
	backupTableCmd.Flags().StringP("file", "f", "",
		"[Optional] Path of a YAML or JSON backup request, replacing the flags above.")
}
