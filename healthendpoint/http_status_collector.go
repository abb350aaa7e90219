package healthendpoint

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPStatusCollector tracks the admin API traffic: requests in flight and
// finished requests by route name and status code.
type HTTPStatusCollector interface {
	prometheus.Collector
	IncConcurrentHTTPRequest()
	DecConcurrentHTTPRequest()
	ObserveHTTPRequest(route string, statusCode int, duration time.Duration)
}

type httpStatusCollector struct {
	concurrentHTTPRequestGauge prometheus.Gauge
	httpRequests               *prometheus.CounterVec
	httpRequestDuration        *prometheus.HistogramVec
}

func NewHTTPStatusCollector(namespace, subSystem string) HTTPStatusCollector {
	return &httpStatusCollector{
		concurrentHTTPRequestGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "concurrent_http_request",
				Help:      "Number of concurrent http request",
			}),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "http_requests_total",
				Help:      "Number of finished http requests by route and status code",
			}, []string{"route", "status_code"}),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of http requests by route",
				Buckets:   prometheus.DefBuckets,
			}, []string{"route"}),
	}
}

func (c *httpStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	c.concurrentHTTPRequestGauge.Describe(ch)
	c.httpRequests.Describe(ch)
	c.httpRequestDuration.Describe(ch)
}

func (c *httpStatusCollector) Collect(ch chan<- prometheus.Metric) {
	c.concurrentHTTPRequestGauge.Collect(ch)
	c.httpRequests.Collect(ch)
	c.httpRequestDuration.Collect(ch)
}

func (c *httpStatusCollector) IncConcurrentHTTPRequest() {
	c.concurrentHTTPRequestGauge.Inc()
}

func (c *httpStatusCollector) DecConcurrentHTTPRequest() {
	c.concurrentHTTPRequestGauge.Dec()
}

func (c *httpStatusCollector) ObserveHTTPRequest(route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(route, strconv.Itoa(statusCode)).Inc()
	c.httpRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}
