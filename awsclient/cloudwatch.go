package awsclient

import (
	"context"
	"fmt"
	"time"

	"github.com/tablescaler/tablescaler/models"

	"code.cloudfoundry.org/clock"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	DefaultLookbackBuffer = 5 * time.Minute
	DefaultMetricPeriod   = 300 * time.Second

	MetricConsumedReads  = "ConsumedReadCapacityUnits"
	MetricConsumedWrites = "ConsumedWriteCapacityUnits"

	dynamoDBNamespace = "AWS/DynamoDB"
)

type CloudWatchAPI interface {
	GetMetricStatistics(ctx context.Context, params *cloudwatch.GetMetricStatisticsInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricStatisticsOutput, error)
}

// CloudWatchMetrics reports consumed capacity in units per second, averaged
// over one period that ends LookbackBuffer before now. CloudWatch publishes
// DynamoDB metrics with a delay, so the most recent minutes are skipped.
type CloudWatchMetrics struct {
	client         CloudWatchAPI
	clock          clock.Clock
	lookbackBuffer time.Duration
	period         time.Duration
}

func NewCloudWatchMetrics(client CloudWatchAPI, clock clock.Clock, lookbackBuffer time.Duration, period time.Duration) *CloudWatchMetrics {
	return &CloudWatchMetrics{
		client:         client,
		clock:          clock,
		lookbackBuffer: lookbackBuffer,
		period:         period,
	}
}

func (c *CloudWatchMetrics) ConsumedReads(ctx context.Context, index models.Index) (float64, error) {
	return c.average(ctx, index, MetricConsumedReads)
}

func (c *CloudWatchMetrics) ConsumedWrites(ctx context.Context, index models.Index) (float64, error) {
	return c.average(ctx, index, MetricConsumedWrites)
}

// average sums every datapoint in the window and divides by its length.
// DynamoDB records nothing for idle indexes, so no datapoints means zero.
func (c *CloudWatchMetrics) average(ctx context.Context, index models.Index, metric string) (float64, error) {
	output, err := c.client.GetMetricStatistics(ctx, NewMetricStatisticsInput(index, metric, c.clock.Now(), c.lookbackBuffer, c.period))
	if err != nil {
		return 0, fmt.Errorf("failed to get %s of %s: %w", metric, index, err)
	}

	var sum float64
	for _, datapoint := range output.Datapoints {
		sum += aws.ToFloat64(datapoint.Sum)
	}
	return sum / c.period.Seconds(), nil
}

func NewMetricStatisticsInput(index models.Index, metric string, now time.Time, lookbackBuffer time.Duration, period time.Duration) *cloudwatch.GetMetricStatisticsInput {
	end := now.Add(-lookbackBuffer)
	start := end.Add(-period)

	dimensions := []types.Dimension{
		{Name: aws.String("TableName"), Value: aws.String(index.TableName)},
	}
	if index.IsGSI() {
		dimensions = append(dimensions, types.Dimension{
			Name:  aws.String("GlobalSecondaryIndexName"),
			Value: aws.String(index.GSIName),
		})
	}

	return &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String(dynamoDBNamespace),
		MetricName: aws.String(metric),
		Dimensions: dimensions,
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		// one period across the whole window yields a single datapoint
		Period:     aws.Int32(int32(period.Seconds())),
		Statistics: []types.Statistic{types.StatisticSum},
		Unit:       types.StandardUnitCount,
	}
}
