/*
 * Copyright (c) YugabyteDB, Inc.
 */

package table

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter/columntype"
)

var columnTypesCmd = &cobra.Command{
	Use:     "column-types",
	Short:   "List the column types of YugabyteDB Anywhere tables",
	Long:    "List the primitive and collection column types a table definition can use",
	Example: `yba-console table column-types`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		console := util.MustConsole(ctx)
		types, err := console.Tables.FetchColumnTypes(ctx)
		if err != nil {
			util.Fatal(err)
		}
		outputCtx := util.OutputContext("column-types list",
			columntype.NewColumnTypeFormat(viper.GetString("output")))
		if err := columntype.Write(outputCtx, types); err != nil {
			util.Fatal(err)
		}
	},
}
