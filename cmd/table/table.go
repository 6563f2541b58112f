/*
 * Copyright (c) YugabyteDB, Inc.
 */

package table

import (
	"github.com/spf13/cobra"
)

// TableCmd set of commands are used to perform operations on universe tables
// in YugabyteDB Anywhere
var TableCmd = &cobra.Command{
	Use:   "table",
	Short: "Manage YugabyteDB Anywhere universe tables",
	Long:  "Manage YugabyteDB Anywhere universe tables",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	TableCmd.Flags().SortFlags = false

	TableCmd.AddCommand(listTableCmd)
	TableCmd.AddCommand(describeTableCmd)
	TableCmd.AddCommand(createTableCmd)
	TableCmd.AddCommand(dropTableCmd)
	TableCmd.AddCommand(bulkImportTableCmd)
	TableCmd.AddCommand(backupTableCmd)
	TableCmd.AddCommand(columnTypesCmd)

	TableCmd.PersistentFlags().StringP("name", "n", "",
		"[Required] The name of the universe for the corresponding table operations.")
}
