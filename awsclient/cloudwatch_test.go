package awsclient_test

import (
	"context"
	"errors"
	"time"

	. "github.com/tablescaler/tablescaler/awsclient"
	"github.com/tablescaler/tablescaler/fakes"
	"github.com/tablescaler/tablescaler/models"

	"code.cloudfoundry.org/clock/fakeclock"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CloudWatchMetrics", func() {
	var (
		client  *fakes.FakeCloudWatchAPI
		fclock  *fakeclock.FakeClock
		now     time.Time
		metrics *CloudWatchMetrics
	)

	BeforeEach(func() {
		client = &fakes.FakeCloudWatchAPI{}
		now = time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)
		fclock = fakeclock.NewFakeClock(now)
		metrics = NewCloudWatchMetrics(client, fclock, DefaultLookbackBuffer, DefaultMetricPeriod)
	})

	It("queries the consumed reads of a table", func() {
		client.GetMetricStatisticsReturns(&cloudwatch.GetMetricStatisticsOutput{
			Datapoints: []types.Datapoint{{Sum: aws.Float64(3000)}},
		}, nil)

		reads, err := metrics.ConsumedReads(context.Background(), models.NewIndex("orders", ""))
		Expect(err).NotTo(HaveOccurred())
		Expect(reads).To(Equal(10.0))

		Expect(client.GetMetricStatisticsCallCount()).To(Equal(1))
		_, input, _ := client.GetMetricStatisticsArgsForCall(0)
		Expect(aws.ToString(input.Namespace)).To(Equal("AWS/DynamoDB"))
		Expect(aws.ToString(input.MetricName)).To(Equal(MetricConsumedReads))
		Expect(aws.ToTime(input.EndTime)).To(Equal(now.Add(-5 * time.Minute)))
		Expect(aws.ToTime(input.StartTime)).To(Equal(now.Add(-10 * time.Minute)))
		Expect(aws.ToInt32(input.Period)).To(Equal(int32(300)))
		Expect(input.Statistics).To(ConsistOf(types.StatisticSum))
		Expect(input.Unit).To(Equal(types.StandardUnitCount))
		Expect(input.Dimensions).To(HaveLen(1))
		Expect(aws.ToString(input.Dimensions[0].Name)).To(Equal("TableName"))
		Expect(aws.ToString(input.Dimensions[0].Value)).To(Equal("orders"))
	})

	It("queries the consumed writes of a global secondary index", func() {
		client.GetMetricStatisticsReturns(&cloudwatch.GetMetricStatisticsOutput{
			Datapoints: []types.Datapoint{{Sum: aws.Float64(600)}},
		}, nil)

		writes, err := metrics.ConsumedWrites(context.Background(), models.NewIndex("orders", "by-customer"))
		Expect(err).NotTo(HaveOccurred())
		Expect(writes).To(Equal(2.0))

		_, input, _ := client.GetMetricStatisticsArgsForCall(0)
		Expect(aws.ToString(input.MetricName)).To(Equal(MetricConsumedWrites))
		Expect(input.Dimensions).To(HaveLen(2))
		Expect(aws.ToString(input.Dimensions[1].Name)).To(Equal("GlobalSecondaryIndexName"))
		Expect(aws.ToString(input.Dimensions[1].Value)).To(Equal("by-customer"))
	})

	It("is zero without datapoints", func() {
		client.GetMetricStatisticsReturns(&cloudwatch.GetMetricStatisticsOutput{}, nil)

		reads, err := metrics.ConsumedReads(context.Background(), models.NewIndex("orders", ""))
		Expect(err).NotTo(HaveOccurred())
		Expect(reads).To(BeZero())
	})

	It("sums all datapoints in the window", func() {
		client.GetMetricStatisticsReturns(&cloudwatch.GetMetricStatisticsOutput{
			Datapoints: []types.Datapoint{{Sum: aws.Float64(1200)}, {Sum: aws.Float64(1800)}},
		}, nil)

		reads, err := metrics.ConsumedReads(context.Background(), models.NewIndex("orders", ""))
		Expect(err).NotTo(HaveOccurred())
		Expect(reads).To(Equal(10.0))
	})

	It("moves the window with the clock", func() {
		client.GetMetricStatisticsReturns(&cloudwatch.GetMetricStatisticsOutput{}, nil)
		fclock.Increment(time.Minute)

		_, err := metrics.ConsumedReads(context.Background(), models.NewIndex("orders", ""))
		Expect(err).NotTo(HaveOccurred())

		_, input, _ := client.GetMetricStatisticsArgsForCall(0)
		Expect(aws.ToTime(input.EndTime)).To(Equal(now.Add(-4 * time.Minute)))
	})

	It("returns the wrapped error", func() {
		client.GetMetricStatisticsReturns(nil, errors.New("access denied"))

		_, err := metrics.ConsumedWrites(context.Background(), models.NewIndex("orders", ""))
		Expect(err).To(MatchError("failed to get ConsumedWriteCapacityUnits of orders: access denied"))
	})
})
