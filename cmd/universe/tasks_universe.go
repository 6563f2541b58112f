/*
 * Copyright (c) YugabyteDB, Inc.
 */

package universe

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/task"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

var tasksUniverseCmd = &cobra.Command{
	Use:     "tasks",
	Short:   "List the tasks of a YugabyteDB Anywhere universe",
	Long:    "List the customer tasks targeting a YugabyteDB Anywhere universe",
	Example: `yba-console universe tasks --name <universe-name>`,
	PreRun: func(cmd *cobra.Command, args []string) {
		util.RequireFlag(cmd, "name", "No universe name found to list tasks")
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)
		universe, err := console.FindUniverse(ctx, util.MustGetString(cmd, "name"))
		if err != nil {
			logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
		}
		r, err := console.Tasks.FetchCustomerTasks(ctx)
		if err != nil {
			util.Fatal(err)
		}
		tasks := make([]model.CustomerTask, 0)
		for _, t := range r {
			if t.TargetUUID == universe.UniverseUUID {
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
	tasksUniverseCmd.Flags().SortFlags = false

	tasksUniverseCmd.Flags().StringP("name", "n", "",
		"[Required] The name of the universe.")
}
