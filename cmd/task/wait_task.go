/*
 * Copyright (c) YugabyteDB, Inc.
 */

package task

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
)

var waitTaskCmd = &cobra.Command{
	Use:     "wait",
	Short:   "Wait for a YugabyteDB Anywhere task to complete",
	Long:    "Poll the progress of a YugabyteDB Anywhere task until it completes",
	Example: `yba-console task wait --uuid <task-uuid>`,
	PreRun: func(cmd *cobra.Command, args []string) {
		taskUUID := util.RequireFlag(cmd, "uuid", "No task UUID found to wait for")
		if err := util.ValidateUUID("uuid", taskUUID); err != nil {
			util.Fatal(err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		viper.Set("wait", true)
		console := util.MustConsole(ctx)
		taskUUID := util.MustGetString(cmd, "uuid")
		if err := console.WaitForTask(ctx, taskUUID, "Task "+taskUUID); err != nil {
			util.Fatal(err)
		}
	},
}

func init() {
	waitTaskCmd.Flags().SortFlags = false

	waitTaskCmd.Flags().StringP("uuid", "u", "", "[Required] UUID of the task.")
}
