/*
 * Copyright (c) YugabyteDB, Inc.
 */

package table

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/cmd/util"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/formatter"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/model"
	"github.com/yugabyte/yugabyte-db/managed/yba-console/internal/payload"
	"sigs.k8s.io/yaml"
)

var bulkImportTableCmd = &cobra.Command{
	Use:   "bulk-import",
	Short: "Bulk import data into a YugabyteDB Anywhere universe table",
	Long:  "Load data from an S3 bucket into a table of a YugabyteDB Anywhere universe",
	Example: `yba-console table bulk-import --name <universe-name> ` +
		`--table-name <table-name> --s3-bucket s3://bucket/path`,
	PreRun: func(cmd *cobra.Command, args []string) {
		util.RequireFlag(cmd, "name", "No universe name found for bulk import")
		util.RequireFlag(cmd, "table-name", "No table name found for bulk import")
		if util.IsEmptyString(util.MustGetString(cmd, "s3-bucket")) &&
			util.IsEmptyString(util.MustGetString(cmd, "file")) {
			cmd.Help()
			util.Fatal(fmt.Errorf("either --s3-bucket or --file is required"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		params, err := bulkImportParams(cmd)
		if err != nil {
			util.Fatal(err)
		}
		if verify, _ := cmd.Flags().GetBool("verify-bucket"); verify {
			if err := util.VerifyS3Bucket(ctx, params.S3Bucket,
				util.MustGetString(cmd, "s3-region")); err != nil {
				util.Fatal(err)
			}
		}
		console := util.MustConsole(ctx)
		universe, err := console.FindUniverse(ctx, util.MustGetString(cmd, "name"))
		if err != nil {
			util.Fatal(err)
		}
		t, err := console.FindTable(ctx, universe.UniverseUUID,
			util.MustGetString(cmd, "keyspace"), util.MustGetString(cmd, "table-name"))
		if err != nil {
			util.Fatal(err)
		}
		if params.TableName == "" {
			params.TableName = t.TableName
		}
		if params.Keyspace == "" {
			params.Keyspace = t.KeySpace
		}
		task, err := console.Tables.BulkImport(ctx, universe.UniverseUUID, t.TableUUID, params)
		if err != nil {
			util.Fatal(err)
		}
		logrus.Info(fmt.Sprintf("Importing %s into table %s\n", params.S3Bucket,
			formatter.Colorize(t.TableName, formatter.GreenColor)))
		console.FinishTask(ctx, task, "Bulk import")
	},
}

// bulkImportParams reads the request file when given, flags override its fields
func bulkImportParams(cmd *cobra.Command) (model.BulkImportParams, error) {
	var params model.BulkImportParams
	if file := util.MustGetString(cmd, "file"); file != "" {
		var err error
		if params, err = payload.BulkImport(file); err != nil {
			return params, err
		}
	}
	if bucket := util.MustGetString(cmd, "s3-bucket"); bucket != "" {
		params.S3Bucket = bucket
	}
	count, err := cmd.Flags().GetInt32("instance-count")
	if err != nil {
		return params, err
	}
	if count > 0 {
		params.InstanceCount = count
	}
	// flags bypass the file so the merged request is validated once more
	document, err := yaml.Marshal(params)
	if err != nil {
		return params, err
	}
	err = payload.Decode(payload.BulkImportSchema, document, &params)
	return params, err
}

func init() {
	bulkImportTableCmd.Flags().SortFlags = false

	bulkImportTableCmd.Flags().String("table-name", "",
		"[Required] The name of the table to import into.")
	bulkImportTableCmd.Flags().String("keyspace", "",
		"[Optional] Keyspace of the table.")
	bulkImportTableCmd.Flags().String("s3-bucket", "",
		"[Optional] S3 path of the data to import, starting with s3://. "+
			"Required when --file is not set.")
	bulkImportTableCmd.Flags().Bool("verify-bucket", false,
		"[Optional] Check that the S3 bucket is reachable with the AWS credentials of "+
			"the environment before importing.")
	bulkImportTableCmd.Flags().String("s3-region", "",
		"[Optional] Region of the S3 bucket checked by --verify-bucket. "+
			"Looked up when neither this flag nor AWS_REGION is set.")
	bulkImportTableCmd.Flags().Int32("instance-count", 0,
		"[Optional] Number of task instances of the import job.")
	bulkImportTableCmd.Flags().StringP("file", "f", "",
		"[Optional] Path of a YAML or JSON bulk import request.")
}
