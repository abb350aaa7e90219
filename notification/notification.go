package notification

import (
	"context"
	"errors"
	"time"

	"github.com/tablescaler/tablescaler/healthendpoint"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenk/backoff"
	"github.com/facebookgo/clock"
	circuit "github.com/rubyist/circuitbreaker"
)

const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
	OutcomeDisabled  = "disabled"
)

type Sink interface {
	Publish(ctx context.Context, topic string, subject string, body string) error
}

type BreakerConfig struct {
	BackOffInitialInterval  time.Duration `yaml:"back_off_initial_interval" json:"back_off_initial_interval"`
	BackOffMaxInterval      time.Duration `yaml:"back_off_max_interval" json:"back_off_max_interval"`
	ConsecutiveFailureCount int64         `yaml:"consecutive_failure_count" json:"consecutive_failure_count"`
}

// NewBreaker returns nil when the breaker is disabled, i.e. when
// ConsecutiveFailureCount is not positive. A nil clk uses the wall clock.
func NewBreaker(conf BreakerConfig, clk clock.Clock) *circuit.Breaker {
	if conf.ConsecutiveFailureCount <= 0 {
		return nil
	}
	if clk == nil {
		clk = clock.New()
	}
	bf := backoff.NewExponentialBackOff()
	bf.InitialInterval = conf.BackOffInitialInterval
	bf.MaxInterval = conf.BackOffMaxInterval
	bf.MaxElapsedTime = 0
	bf.RandomizationFactor = 0
	bf.Clock = clk
	bf.Reset()
	return circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    bf,
		Clock:      clk,
		ShouldTrip: circuit.ConsecutiveTripFunc(conf.ConsecutiveFailureCount),
	})
}

// Notifier escalates scaling events to operators. Every event is logged;
// it is published to the topic only when one is configured. Publish
// failures never reach the caller.
type Notifier struct {
	logger    lager.Logger
	sink      Sink
	topic     string
	breaker   *circuit.Breaker
	collector healthendpoint.ScalerStatusCollector
}

func NewNotifier(logger lager.Logger, sink Sink, topic string, breaker *circuit.Breaker, collector healthendpoint.ScalerStatusCollector) *Notifier {
	return &Notifier{
		logger:    logger.Session("notifier"),
		sink:      sink,
		topic:     topic,
		breaker:   breaker,
		collector: collector,
	}
}

func (n *Notifier) Enabled() bool {
	return n.topic != "" && n.sink != nil
}

func (n *Notifier) Notify(ctx context.Context, subject string, body string) {
	logger := n.logger.Session("notify", lager.Data{"subject": subject, "topic": n.topic})
	logger.Error("scaling-event", errors.New(body))

	if !n.Enabled() {
		n.collector.IncNotification(OutcomeDisabled)
		return
	}

	publish := func() error { return n.sink.Publish(ctx, n.topic, subject, body) }

	var err error
	if n.breaker != nil {
		if n.breaker.Tripped() {
			logger.Info("circuit-tripped", lager.Data{"consecutiveFailures": n.breaker.ConsecFailures()})
		}
		err = n.breaker.Call(publish, 0)
	} else {
		err = publish()
	}

	switch {
	case err == nil:
		logger.Debug("delivered")
		n.collector.IncNotification(OutcomeDelivered)
	case errors.Is(err, circuit.ErrBreakerOpen):
		logger.Info("skipped-circuit-open")
		n.collector.IncNotification(OutcomeSkipped)
	default:
		logger.Error("failed-to-publish", err)
		n.collector.IncNotification(OutcomeFailed)
	}
}
