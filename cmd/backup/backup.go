/*
 * Copyright (c) YugaByte, Inc.
 */

package backup

import (
	"github.com/spf13/cobra"
)

// BackupCmd set of commands are used to perform operations on backups
// in YugabyteDB Anywhere
var BackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage YugabyteDB Anywhere universe backups",
	Long:  "Manage YugabyteDB Anywhere universe backups",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	BackupCmd.Flags().SortFlags = false

	BackupCmd.AddCommand(restoreBackupCmd)
}
