package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"master_booking/internal/config"
)

// NewAWSConfig builds the AWS configuration shared by the DynamoDB and S3 clients.
//
// Local emulators (DynamoDB Local, MinIO) do not validate credentials, but the
// SDK refuses to sign without them, so static ones are always provided.
func NewAWSConfig(ctx context.Context, cfg config.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}

// ConnectDynamoDB returns a client for the rate-limit table.
// endpoint overrides the regional one, e.g. http://dynamodb:8000.
func ConnectDynamoDB(awsCfg aws.Config, endpoint string) *dynamodb.Client {
	slog.Info("[database][dynamodb] client initialized", "region", awsCfg.Region, "custom_endpoint", endpoint != "")
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
