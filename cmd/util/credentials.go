/*
 * Copyright (c) YugabyteDB, Inc.
 */

package util

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	awsCreds "github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/sirupsen/logrus"
)

// s3Endpoint overrides the S3 endpoint, path style addressing is used when set
var s3Endpoint = ""

// AwsCredentialsFromEnv retrives values of "AWS_ACCESS_KEY_ID" and "AWS_SECRET_ACCESS_KEY" from
// env variables
func AwsCredentialsFromEnv() (awsCreds.Value, error) {
	awsCredentials, err := awsCreds.NewEnvCredentials().Get()
	if err != nil {
		return awsCreds.Value{}, fmt.Errorf("Error getting AWS env credentials %s", err)
	}
	return awsCredentials, nil
}

// awsCredentials resolves the credentials of the environment, then of the shared
// credentials file
func awsCredentials() *awsCreds.Credentials {
	if value, err := AwsCredentialsFromEnv(); err == nil {
		return awsCreds.NewStaticCredentialsFromCreds(value)
	}
	logrus.Debugf("%s or %s not set, using the shared AWS credentials file\n",
		AWSAccessKeyEnv, AWSSecretAccessKeyEnv)
	return awsCreds.NewSharedCredentials("", "")
}

// S3BucketName returns the bucket of an s3://bucket/prefix location
func S3BucketName(location string) (string, error) {
	if !strings.HasPrefix(location, s3Scheme) {
		return "", fmt.Errorf("%s is not an S3 location, it must start with %s",
			location, s3Scheme)
	}
	bucket, _, _ := strings.Cut(strings.TrimPrefix(location, s3Scheme), "/")
	if bucket == "" {
		return "", fmt.Errorf("%s has no bucket", location)
	}
	return bucket, nil
}

// VerifyS3Bucket checks that the bucket of location exists and that the AWS
// credentials of the environment can reach it. The bucket region is looked up
// when region is empty and AWS_REGION is not set.
func VerifyS3Bucket(ctx context.Context, location, region string) error {
	bucket, err := S3BucketName(location)
	if err != nil {
		return err
	}
	if region == "" {
		region = os.Getenv(AWSRegionEnv)
	}
	config := aws.NewConfig().WithCredentials(awsCredentials()).WithRegion(defaultS3Region)
	if s3Endpoint != "" {
		config = config.WithEndpoint(s3Endpoint).WithS3ForcePathStyle(true)
	}
	sess, err := session.NewSession(config)
	if err != nil {
		return fmt.Errorf("Error creating AWS session: %s", err)
	}
	if region == "" {
		if region, err = s3manager.GetBucketRegion(ctx, sess, bucket, defaultS3Region); err != nil {
			return fmt.Errorf("Unable to find the region of bucket %s: %s", bucket, err)
		}
	}
	_, err = s3.New(sess, aws.NewConfig().WithRegion(region)).
		HeadBucketWithContext(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		return fmt.Errorf("Bucket %s is not reachable in %s: %s", bucket, region, err)
	}
	logrus.Debugf("Bucket %s found in %s\n", bucket, region)
	return nil
}
