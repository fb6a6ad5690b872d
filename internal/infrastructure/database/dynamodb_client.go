package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	appconfig "policy_request_service/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PolicyRequestsCustomerIndex is the GSI used to list requests by customer.
const PolicyRequestsCustomerIndex = "customer_id-index"

const tableCreateTimeout = 30 * time.Second

// ConnectDynamoDB creates a DynamoDB client from the service configuration.
// DYNAMODB_ENDPOINT points the client at DynamoDB Local (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, awsCfg appconfig.AWSConfig, dynamoCfg appconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	cfg, err := NewAWSConfig(ctx, awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if dynamoCfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(dynamoCfg.Endpoint)
		}
	}), nil
}

func NewAWSConfig(ctx context.Context, awsCfg appconfig.AWSConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(awsCfg.AccessKeyID, awsCfg.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(awsCfg.Region),
		config.WithCredentialsProvider(creds),
	)
}

// EnsurePolicyRequestsTable creates the single-table layout used by the policy
// request repository when it does not exist yet. Intended for local runs against
// DynamoDB Local.
func EnsurePolicyRequestsTable(ctx context.Context, client *dynamodb.Client, table string) error {
	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return err
	}

	_, err = client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("pk"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("sk"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("customer_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("created_at"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("pk"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("sk"), KeyType: types.KeyTypeRange},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(PolicyRequestsCustomerIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("customer_id"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return fmt.Errorf("create table %s: %w", table, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(client)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, tableCreateTimeout)
}
