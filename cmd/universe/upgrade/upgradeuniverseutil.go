/*
 * Copyright (c) YugabyteDB, Inc.
 */

package upgrade

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/upgrade"
)

// formEdit fills the upgrade form once it is mounted
type formEdit func(ctx context.Context, console *util.Console) error

// submitUpgrade opens the upgrade modal of modal on the universe named by the command,
// seeds the form with the universe gflags, applies edit to it and submits it. The modal is closed and the form discarded
// when anything fails.
func submitUpgrade(
	cmd *cobra.Command,
	modal string,
	edit formEdit,
) (*util.Console, model.Universe, model.TaskResponse, error) {
	ctx := cmd.Context()
	console, err := util.NewConsole(ctx)
	if err != nil {
		return nil, model.Universe{}, model.TaskResponse{}, err
	}
	universe, err := console.FindUniverse(ctx, util.MustGetString(cmd, "name"))
	if err != nil {
		return nil, model.Universe{}, model.TaskResponse{}, err
	}

	console.Universe.ShowModal(ctx, modal)
	console.Universe.InitializeUpgradeForm(ctx, universe)
	console.Universe.MountUpgradeForm(ctx)
	defer console.Universe.CloseUpgradeForm(ctx)

	delay, err := cmd.Flags().GetInt64("delay")
	if err != nil {
		return nil, universe, model.TaskResponse{}, err
	}
	if err := console.Universe.ChangeUpgradeField(ctx, upgrade.TimeDelayField,
		strconv.FormatInt(delay, 10)); err != nil {
		return nil, universe, model.TaskResponse{}, err
	}
	if err := edit(ctx, console); err != nil {
		return nil, universe, model.TaskResponse{}, err
	}

	form := console.Universe.UpgradeFormOf(ctx, universe)
	logrus.Debugf("Submitting %s form of universe %s\n", upgrade.Title(modal), universe.Name)
	if err := form.HandleSubmit(ctx); err != nil {
		return nil, universe, model.TaskResponse{}, err
	}
	return console, universe, console.Universe.LastUpgrade(), nil
}

// waitForUpgradeUniverseTask waits for the upgrade task and reports the outcome
func waitForUpgradeUniverseTask(
	ctx context.Context,
	console *util.Console,
	universe model.Universe,
	task model.TaskResponse,
) {
	msg := fmt.Sprintf("The universe %s (%s) is being upgraded",
		formatter.Colorize(universe.Name, formatter.GreenColor), universe.UniverseUUID)
	logrus.Info(msg + "\n")
	console.FinishTask(ctx, task, "Universe upgrade")
}
