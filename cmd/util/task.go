/*
 * Copyright (c) YugaByte, Inc.
 */

package util

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"golang.org/x/term"
)

// WaitForTask waits for a task started by the command unless --wait is unset.
// A terminal shows a spinner, otherwise every status change is logged.
func (c *Console) WaitForTask(ctx context.Context, taskUUID, message string) error {
	if !viper.GetBool("wait") {
		logrus.Infof("Task %s started, not waiting for completion\n", taskUUID)
		return nil
	}
	timeout := viper.GetDuration("timeout")
	if !term.IsTerminal(int(os.Stdout.Fd())) || viper.GetBool("debug") {
		previous := ""
		_, err := c.Tasks.WaitForTask(ctx, taskUUID, timeout, func(status model.TaskStatus) {
			if status.Status != previous {
				logrus.Infof("%s: %s\n", message, status.Status)
				previous = status.Status
			}
		})
		return err
	}

	s := spinner.New(spinner.CharSets[36], 300*time.Millisecond)
	s.Color(formatter.GreenColor)
	s.Suffix = fmt.Sprintf(" %s: %s", message, model.UnknownTaskStatus)
	s.FinalMSG = ""
	s.Start()
	defer s.Stop()

	_, err := c.Tasks.WaitForTask(ctx, taskUUID, timeout, spinnerProgress(s, message))
	return err
}

// spinnerProgress shows each polled status in the suffix of the running spinner
func spinnerProgress(s *spinner.Spinner, message string) func(model.TaskStatus) {
	return func(status model.TaskStatus) {
		s.Lock()
		defer s.Unlock()
		s.Suffix = fmt.Sprintf(" %s: %s [Task \"%s\" completion percentage: %.0f%%]",
			message, status.Status, status.Title, status.Percent)
	}
}

// FinishTask waits for the task and reports how it ended
func (c *Console) FinishTask(ctx context.Context, task model.TaskResponse, message string) {
	if err := c.WaitForTask(ctx, task.TaskUUID, message); err != nil {
		logrus.Info(fmt.Sprintf("\nTask %s did not complete\n",
			formatter.Colorize(task.TaskUUID, formatter.BlueColor)))
		Fatal(err)
	}
	if viper.GetBool("wait") {
		logrus.Infof("%s: %s\n", message, formatter.Colorize(model.SuccessTaskStatus,
			formatter.GreenColor))
	}
}
