package scaler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tablescaler/tablescaler/healthendpoint"
	"github.com/tablescaler/tablescaler/models"
	"github.com/tablescaler/tablescaler/notification"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"
)

var (
	ErrSchedulerRunning = errors.New("scheduler is already running")
	ErrSchedulerStopped = errors.New("scheduler has been stopped")
)

type ConfigSource interface {
	Snapshot() []models.IndexScalingConfig
}

type schedulerState int

const (
	stateIdle schedulerState = iota
	stateRunning
	stateStopped
)

func (s schedulerState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRunning:
		return "running"
	default:
		return "stopped"
	}
}

// Scheduler runs scaling passes over every registered index on a single
// goroutine. A pass starts right away and the next one interval after it
// ends, so passes never overlap. A scheduler cannot be restarted once stopped.
type Scheduler struct {
	logger    lager.Logger
	clock     clock.Clock
	interval  time.Duration
	configs   ConfigSource
	scaler    *Scaler
	notifier  *notification.Notifier
	collector healthendpoint.ScalerStatusCollector

	lock   sync.Mutex
	state  schedulerState
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(logger lager.Logger, clock clock.Clock, interval time.Duration, configs ConfigSource,
	scaler *Scaler, notifier *notification.Notifier, collector healthendpoint.ScalerStatusCollector) *Scheduler {
	return &Scheduler{
		logger:    logger.Session("scheduler"),
		clock:     clock,
		interval:  interval,
		configs:   configs,
		scaler:    scaler,
		notifier:  notifier,
		collector: collector,
	}
}

func (s *Scheduler) Start() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	switch s.state {
	case stateRunning:
		return ErrSchedulerRunning
	case stateStopped:
		return ErrSchedulerStopped
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.state = stateRunning
	go s.run(ctx, s.done)
	return nil
}

// Stop cancels the running pass, if any, and waits for the worker to exit.
// It may be called more than once.
func (s *Scheduler) Stop() {
	s.lock.Lock()
	if s.state == stateRunning {
		s.cancel()
	}
	s.state = stateStopped
	done := s.done
	s.lock.Unlock()

	if done != nil {
		<-done
	}
}

func (s *Scheduler) IsRunning() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.state == stateRunning
}

func (s *Scheduler) State() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.state.String()
}

func (s *Scheduler) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	if err := s.Start(); err != nil {
		return err
	}
	close(ready)

	<-signals
	s.Stop()
	return nil
}

func (s *Scheduler) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	s.logger.Info("started", lager.Data{"interval": s.interval})

	for {
		s.runPass(ctx)

		timer := s.clock.NewTimer(s.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("stopped")
			return
		case <-timer.C():
		}
	}
}

func (s *Scheduler) runPass(ctx context.Context) {
	logger := s.logger.Session("pass", lager.Data{"pass_id": uuid.NewString()})
	start := s.clock.Now()

	checked, err := s.checkAll(ctx, logger)
	s.collector.ObservePass(s.clock.Since(start), err != nil && !errors.Is(err, context.Canceled))

	switch {
	case err == nil:
		logger.Debug("completed", lager.Data{"checked": checked})
	case errors.Is(err, context.Canceled):
		logger.Info("cancelled", lager.Data{"checked": checked})
	default:
		logger.Error("failed", err, lager.Data{"checked": checked})
		s.notifier.Notify(context.WithoutCancel(ctx), SubjectUnexpectedError, err.Error())
	}
}

// checkAll stops at the first failing index; the remaining indexes wait for
// the next pass.
func (s *Scheduler) checkAll(ctx context.Context, logger lager.Logger) (checked int, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered-from-panic", fmt.Errorf("%v", r))
			err = fmt.Errorf("panic during scaling pass: %v", r)
		}
	}()

	for _, conf := range s.configs.Snapshot() {
		if err := ctx.Err(); err != nil {
			return checked, err
		}
		if err := s.scaler.CheckAndUpdate(ctx, conf); err != nil {
			return checked, err
		}
		checked++
	}
	return checked, nil
}
