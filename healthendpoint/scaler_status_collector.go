package healthendpoint

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ScalerStatusCollector records the outcome of scheduler passes, capacity
// updates and notifications.
type ScalerStatusCollector interface {
	prometheus.Collector
	ObservePass(duration time.Duration, failed bool)
	IncCapacityUpdate(dimension string, direction string)
	IncSkippedUpdate()
	IncNotification(outcome string)
}

type scalerStatusCollector struct {
	passesCounter         prometheus.Counter
	failedPassesCounter   prometheus.Counter
	passDurationHistogram prometheus.Histogram
	capacityUpdates       *prometheus.CounterVec
	skippedUpdatesCounter prometheus.Counter
	notifications         *prometheus.CounterVec
}

func NewScalerStatusCollector(namespace, subSystem string) ScalerStatusCollector {
	return &scalerStatusCollector{
		passesCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "passes_total",
				Help:      "Number of scaling passes",
			}),
		failedPassesCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "failed_passes_total",
				Help:      "Number of scaling passes aborted by an error",
			}),
		passDurationHistogram: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "pass_duration_seconds",
				Help:      "Duration of scaling passes",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
			}),
		capacityUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "capacity_updates_total",
				Help:      "Number of provisioned capacity changes by dimension and direction",
			}, []string{"dimension", "direction"}),
		skippedUpdatesCounter: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "skipped_updates_total",
				Help:      "Number of capacity updates skipped because the table was not active",
			}),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "notifications_total",
				Help:      "Number of notifications by outcome",
			}, []string{"outcome"}),
	}
}

func (c *scalerStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	c.passesCounter.Describe(ch)
	c.failedPassesCounter.Describe(ch)
	c.passDurationHistogram.Describe(ch)
	c.capacityUpdates.Describe(ch)
	c.skippedUpdatesCounter.Describe(ch)
	c.notifications.Describe(ch)
}

func (c *scalerStatusCollector) Collect(ch chan<- prometheus.Metric) {
	c.passesCounter.Collect(ch)
	c.failedPassesCounter.Collect(ch)
	c.passDurationHistogram.Collect(ch)
	c.capacityUpdates.Collect(ch)
	c.skippedUpdatesCounter.Collect(ch)
	c.notifications.Collect(ch)
}

func (c *scalerStatusCollector) ObservePass(duration time.Duration, failed bool) {
	c.passesCounter.Inc()
	if failed {
		c.failedPassesCounter.Inc()
	}
	c.passDurationHistogram.Observe(duration.Seconds())
}

func (c *scalerStatusCollector) IncCapacityUpdate(dimension string, direction string) {
	c.capacityUpdates.WithLabelValues(dimension, direction).Inc()
}

func (c *scalerStatusCollector) IncSkippedUpdate() {
	c.skippedUpdatesCounter.Inc()
}

func (c *scalerStatusCollector) IncNotification(outcome string) {
	c.notifications.WithLabelValues(outcome).Inc()
}

// NewRegisteredIndexesCollector exposes the number of indexes under
// management, read from count on every scrape.
func NewRegisteredIndexesCollector(namespace, subSystem string, count func() int) prometheus.Collector {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "registered_indexes",
			Help:      "Number of indexes under management",
		}, func() float64 { return float64(count()) })
}
