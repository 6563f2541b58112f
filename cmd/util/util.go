/*
 * Copyright (c) YugaByte, Inc.
 */

package util

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
)

// ConfirmCommand function will add an interactive comfirmation with the message provided
func ConfirmCommand(message string, bypass bool) error {
	errAborted := fmt.Errorf("command aborted")
	if bypass {
		return nil
	}
	response := false
	prompt := &survey.Confirm{
		Message: message,
	}
	err := survey.AskOne(prompt, &response)
	if err != nil {
		return err
	}
	if !response {
		return errAborted
	}
	return nil
}

// IsOutputType check if the output type is t
func IsOutputType(t string) bool {
	return viper.GetString("output") == t
}

// IsEmptyString checks if the string is empty after trimming spaces
func IsEmptyString(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// ValidateUUID fails unless value is a well formed UUID
func ValidateUUID(name, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return fmt.Errorf("%s %q is not a valid UUID", name, value)
	}
	return nil
}

// Fatal logs the error in red and exits
func Fatal(err error) {
	logrus.Fatalf(formatter.Colorize(err.Error()+"\n", formatter.RedColor))
}

// MustGetString reads a string flag, exiting when the flag is not defined
func MustGetString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		Fatal(err)
	}
	return value
}

// MustGetBool reads a bool flag, exiting when the flag is not defined
func MustGetBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		Fatal(err)
	}
	return value
}

// RequireFlag prints the help and exits when the flag value is empty
func RequireFlag(cmd *cobra.Command, name, message string) string {
	value := MustGetString(cmd, name)
	if IsEmptyString(value) {
		cmd.Help()
		logrus.Fatalln(formatter.Colorize(message+"\n", formatter.RedColor))
	}
	return value
}

// OutputContext builds the formatter context of a command from the output flag
func OutputContext(command string, format formatter.Format) formatter.Context {
	return formatter.Context{
		Command: formatter.Command(command),
		Output:  outputWriter(),
		Format:  format,
	}
}

// EmptyList reports an empty listing in the selected output
func EmptyList(entity string) {
	if IsOutputType(formatter.TableFormatKey) {
		logrus.Infof("No %s found\n", entity)
	} else {
		logrus.Info("[]\n")
	}
}
