/*
 * Copyright (c) YugabyteDB, Inc.
 */

package util

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/upgrade"
)

// EditFlagRows prompts for gflag rows of a server type until an empty name is entered
func EditFlagRows(serverType string, rows []upgrade.FlagRow) ([]upgrade.FlagRow, error) {
	edited := make([]upgrade.FlagRow, 0, len(rows))
	for _, row := range rows {
		if row.Name != "" {
			edited = append(edited, row)
		}
	}
	for {
		var row upgrade.FlagRow
		if err := survey.AskOne(&survey.Input{
			Message: serverType + " gflag name (empty to finish):",
		}, &row.Name); err != nil {
			return nil, err
		}
		if row.Name == "" {
			return edited, nil
		}
		if err := survey.AskOne(&survey.Input{
			Message: row.Name + " value:",
		}, &row.Value, survey.WithValidator(survey.Required)); err != nil {
			return nil, err
		}
		edited = append(edited, row)
	}
}
