/*
 * Copyright (c) YugaByte, Inc.
 */

package util

const (
	// UniverseType resource type of a universe
	UniverseType = "universe"
	// MasterServerType for gflags of master servers
	MasterServerType = "MASTER"
	// TServerServerType for gflags of tablet servers
	TServerServerType = "TSERVER"

	// AWSAccessKeyEnv env variable name for the bulk import bucket check
	AWSAccessKeyEnv = "AWS_ACCESS_KEY_ID"
	// AWSSecretAccessKeyEnv env variable name for the bulk import bucket check
	AWSSecretAccessKeyEnv = "AWS_SECRET_ACCESS_KEY"
	// AWSRegionEnv env variable name of the region of the bucket
	AWSRegionEnv = "AWS_REGION"

	s3Scheme        = "s3://"
	defaultS3Region = "us-east-1"

	ybVersionRegex = "^(\\d+.\\d+.\\d+.\\d+)(-(b(\\d+)|(\\w+)))?$"
)
