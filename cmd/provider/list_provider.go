/*
 * Copyright (c) YugaByte, Inc.
 */

package provider

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/provider"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
)

var listProviderCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List YugabyteDB Anywhere providers",
	Long:    "List YugabyteDB Anywhere providers",
	Example: `yba-console provider list`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)
		if err := console.Cloud.FetchCloudMetadata(ctx); err != nil {
			util.Fatal(err)
		}
		props := console.Cloud.Props()

		// filter by name and/or by provider code
		providerName := util.MustGetString(cmd, "name")
		providerCode := util.MustGetString(cmd, "code")
		providers := make([]model.Provider, 0, len(props.Providers.Data))
		for _, p := range props.Providers.Data {
			if (providerName == "" || p.Name == providerName) &&
				(providerCode == "" || p.Code == providerCode) {
				providers = append(providers, p)
			}
		}
		if len(providers) < 1 {
			util.EmptyList("providers")
			return
		}
		providerCtx := util.OutputContext("provider list",
			provider.NewProviderFormat(viper.GetString("output")))
		if err := provider.Write(providerCtx, providers); err != nil {
			util.Fatal(err)
		}
	},
}

var listRegionCmd = &cobra.Command{
	Use:     "regions",
	Short:   "List the regions supported by YugabyteDB Anywhere providers",
	Long:    "List the regions supported by YugabyteDB Anywhere providers",
	Example: `yba-console provider regions`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)
		if err := console.Cloud.FetchCloudMetadata(ctx); err != nil {
			util.Fatal(err)
		}
		regions := console.Cloud.Props().Regions.Data
		if len(regions) < 1 {
			util.EmptyList("regions")
			return
		}
		regionCtx := util.OutputContext("region list",
			provider.NewRegionFormat(viper.GetString("output")))
		if err := provider.WriteRegions(regionCtx, regions); err != nil {
			util.Fatal(err)
		}
	},
}

func init() {
	listProviderCmd.Flags().SortFlags = false

	listProviderCmd.Flags().StringP("name", "n", "", "[Optional] Name of the provider.")
	listProviderCmd.Flags().StringP("code", "c", "",
		"[Optional] Code of the provider, e.g. aws, gcp, azu, kubernetes, onprem.")
}
