package awsclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tablescaler/tablescaler/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	ErrIndexNotFound           = errors.New("global secondary index not found")
	ErrNoProvisionedThroughput = errors.New("index has no provisioned throughput")
)

type DynamoDBAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	UpdateTable(ctx context.Context, params *dynamodb.UpdateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTableOutput, error)
}

// DynamoTables reads and changes the provisioned throughput of tables and
// their global secondary indexes.
type DynamoTables struct {
	logger lager.Logger
	client DynamoDBAPI
}

func NewDynamoTables(logger lager.Logger, client DynamoDBAPI) *DynamoTables {
	return &DynamoTables{
		logger: logger.Session("dynamo-tables"),
		client: client,
	}
}

// Describe returns the throughput of the index. Missing decrease or
// increase timestamps, as reported for indexes whose capacity never changed,
// are replaced by the table creation time.
func (d *DynamoTables) Describe(ctx context.Context, index models.Index) (models.ThroughputSnapshot, error) {
	output, err := d.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(index.TableName),
	})
	if err != nil {
		return models.ThroughputSnapshot{}, fmt.Errorf("failed to describe table %s: %w", index.TableName, err)
	}
	table := output.Table
	if table == nil {
		return models.ThroughputSnapshot{}, fmt.Errorf("failed to describe table %s: empty description", index.TableName)
	}

	created := aws.ToTime(table.CreationDateTime)
	status := string(table.TableStatus)
	throughput := table.ProvisionedThroughput

	if index.IsGSI() {
		gsi, found := findGSI(table.GlobalSecondaryIndexes, index.GSIName)
		if !found {
			return models.ThroughputSnapshot{}, fmt.Errorf("%w: %s", ErrIndexNotFound, index)
		}
		status = string(gsi.IndexStatus)
		throughput = gsi.ProvisionedThroughput
	}
	if throughput == nil {
		return models.ThroughputSnapshot{}, fmt.Errorf("%w: %s", ErrNoProvisionedThroughput, index)
	}

	return models.ThroughputSnapshot{
		Status:        status,
		Created:       created,
		LastDecrease:  timeOrDefault(throughput.LastDecreaseDateTime, created),
		LastIncrease:  timeOrDefault(throughput.LastIncreaseDateTime, created),
		ReadCapacity:  aws.ToInt64(throughput.ReadCapacityUnits),
		WriteCapacity: aws.ToInt64(throughput.WriteCapacityUnits),
	}, nil
}

func (d *DynamoTables) UpdateCapacity(ctx context.Context, index models.Index, reads int64, writes int64) error {
	logger := d.logger.Session("update-capacity", lager.Data{"index": index.String(), "reads": reads, "writes": writes})

	_, err := d.client.UpdateTable(ctx, NewUpdateTableInput(index, reads, writes))
	if err != nil {
		logger.Error("failed-to-update-table", err)
		return fmt.Errorf("failed to update table %s: %w", index, err)
	}
	logger.Info("updated")
	return nil
}

// NewUpdateTableInput changes either the table throughput or the throughput
// of one global secondary index, never both.
func NewUpdateTableInput(index models.Index, reads int64, writes int64) *dynamodb.UpdateTableInput {
	throughput := &types.ProvisionedThroughput{
		ReadCapacityUnits:  aws.Int64(reads),
		WriteCapacityUnits: aws.Int64(writes),
	}
	input := &dynamodb.UpdateTableInput{
		TableName: aws.String(index.TableName),
	}
	if index.IsGSI() {
		input.GlobalSecondaryIndexUpdates = []types.GlobalSecondaryIndexUpdate{
			{
				Update: &types.UpdateGlobalSecondaryIndexAction{
					IndexName:             aws.String(index.GSIName),
					ProvisionedThroughput: throughput,
				},
			},
		}
	} else {
		input.ProvisionedThroughput = throughput
	}
	return input
}

func findGSI(gsis []types.GlobalSecondaryIndexDescription, name string) (types.GlobalSecondaryIndexDescription, bool) {
	for _, gsi := range gsis {
		if aws.ToString(gsi.IndexName) == name {
			return gsi, true
		}
	}
	return types.GlobalSecondaryIndexDescription{}, false
}

func timeOrDefault(t *time.Time, def time.Time) time.Time {
	if t == nil {
		return def
	}
	return *t
}
