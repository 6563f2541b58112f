/*
 * Copyright (c) YugaByte, Inc.
 */

package provider

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

var deleteProviderCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete a YugabyteDB Anywhere provider",
	Long:    "Delete a provider in YugabyteDB Anywhere",
	Example: `yba-console provider delete --name <provider-name>`,
	PreRun: func(cmd *cobra.Command, args []string) {
		viper.BindPFlag("force", cmd.Flags().Lookup("force"))
		providerName := util.RequireFlag(cmd, "name", "No provider name found to delete")
		err := util.ConfirmCommand(
			fmt.Sprintf("Are you sure you want to delete %s: %s", "provider", providerName),
			viper.GetBool("force"))
		if err != nil {
			util.Fatal(err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)
		if err := console.Cloud.FetchCloudMetadata(ctx); err != nil {
			util.Fatal(err)
		}
		providerName := util.MustGetString(cmd, "name")
		var selected *model.Provider
		for _, p := range console.Cloud.Props().Providers.Data {
			if p.Name == providerName {
				p := p
				selected = &p
				break
			}
		}
		if selected == nil {
			util.Fatal(fmt.Errorf("no providers with name: %s found", providerName))
		}

		if err := console.Cloud.DeleteProviderConfig(ctx, selected.UUID); err != nil {
			util.Fatal(err)
		}
		msg := fmt.Sprintf("The provider %s (%s) has been deleted",
			formatter.Colorize(providerName, formatter.GreenColor), selected.UUID)
		logrus.Infoln(msg + "\n")
	},
}

func init() {
	deleteProviderCmd.Flags().SortFlags = false

	deleteProviderCmd.Flags().StringP("name", "n", "",
		"[Required] The name of the provider to be deleted.")
	deleteProviderCmd.Flags().BoolP("force", "f", false,
		"[Optional] Bypass the prompt for non-interactive usage.")
}
