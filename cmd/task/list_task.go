/*
 * Copyright (c) YugaByte, Inc.
 */

package task

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/task"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

var listTaskCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List YugabyteDB Anywhere tasks",
	Long:    "List YugabyteDB Anywhere tasks",
	Example: `yba-console task list --target-uuid <universe-uuid>`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)
		r, err := console.Tasks.FetchCustomerTasks(ctx)
		if err != nil {
			util.Fatal(err)
		}
		target := util.MustGetString(cmd, "target-uuid")
		tasks := make([]model.CustomerTask, 0, len(r))
		for _, t := range r {
			if target == "" || t.TargetUUID == target {
				tasks = append(tasks, t)
			}
		}
		if len(tasks) < 1 {
			util.EmptyList("tasks")
			return
		}
		taskCtx := util.OutputContext("task list", task.NewTaskFormat(viper.GetString("output")))
		if err := task.Write(taskCtx, tasks); err != nil {
			util.Fatal(err)
		}
	},
}

func init() {
	listTaskCmd.Flags().SortFlags = false

	listTaskCmd.Flags().String("target-uuid", "",
		"[Optional] Only list the tasks of this universe or resource.")
}
