package scaler

import (
	"context"
	"fmt"

	"github.com/tablescaler/tablescaler/healthendpoint"
	"github.com/tablescaler/tablescaler/models"
	"github.com/tablescaler/tablescaler/notification"
	"github.com/tablescaler/tablescaler/scalingengine"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

const (
	SubjectMaximumReached  = "Table Scaling - Maximum Reached"
	SubjectUnexpectedError = "Table Scaling - Unexpected Error"
)

type MetricsSource interface {
	ConsumedReads(ctx context.Context, index models.Index) (float64, error)
	ConsumedWrites(ctx context.Context, index models.Index) (float64, error)
}

type TableDescriptionSource interface {
	Describe(ctx context.Context, index models.Index) (models.ThroughputSnapshot, error)
}

type TableUpdater interface {
	UpdateCapacity(ctx context.Context, index models.Index, reads int64, writes int64) error
}

// Scaler checks one index at a time: it gathers the current throughput and
// consumption, asks the scaling engine for targets and applies them.
type Scaler struct {
	logger    lager.Logger
	clock     clock.Clock
	metrics   MetricsSource
	tables    TableDescriptionSource
	updater   TableUpdater
	notifier  *notification.Notifier
	collector healthendpoint.ScalerStatusCollector
}

func NewScaler(logger lager.Logger, clock clock.Clock, metrics MetricsSource, tables TableDescriptionSource,
	updater TableUpdater, notifier *notification.Notifier, collector healthendpoint.ScalerStatusCollector) *Scaler {
	return &Scaler{
		logger:    logger.Session("scaler"),
		clock:     clock,
		metrics:   metrics,
		tables:    tables,
		updater:   updater,
		notifier:  notifier,
		collector: collector,
	}
}

func (s *Scaler) CheckAndUpdate(ctx context.Context, conf models.IndexScalingConfig) error {
	logger := s.logger.Session("check-index", lager.Data{"index": conf.Index.String()})

	snapshot, err := s.tables.Describe(ctx, conf.Index)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", conf.Index, err)
	}
	consumedReads, err := s.metrics.ConsumedReads(ctx, conf.Index)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", conf.Index, err)
	}
	consumedWrites, err := s.metrics.ConsumedWrites(ctx, conf.Index)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", conf.Index, err)
	}

	decision := scalingengine.ComputeTargets(conf, snapshot, consumedReads, consumedWrites, s.clock.Now())
	logger.Debug("computed-targets", lager.Data{"decision": decision})
	if decision.Overridden {
		logger.Info("capacity-overridden", lager.Data{
			"read_capacity":  snapshot.ReadCapacity,
			"write_capacity": snapshot.WriteCapacity,
		})
	}

	if !decision.ShouldUpdate() {
		return nil
	}
	return s.ApplyUpdate(ctx, conf, snapshot, decision)
}

// ApplyUpdate warns when a target reaches the configured maximum and then
// sets the target capacity, unless the index is busy with another change.
func (s *Scaler) ApplyUpdate(ctx context.Context, conf models.IndexScalingConfig, snapshot models.ThroughputSnapshot, decision scalingengine.Decision) error {
	logger := s.logger.Session("apply-update", lager.Data{
		"index":         conf.Index.String(),
		"target_reads":  decision.TargetReads,
		"target_writes": decision.TargetWrites,
	})

	if s.notifier.Enabled() && (decision.TargetReads >= conf.MaxRead || decision.TargetWrites >= conf.MaxWrite) {
		s.notifier.Notify(ctx, SubjectMaximumReached, maximumReachedMessage(conf, decision))
	}

	if !snapshot.IsActive() {
		logger.Info("skipped-not-active", lager.Data{"status": snapshot.Status})
		s.collector.IncSkippedUpdate()
		return nil
	}

	if err := s.updater.UpdateCapacity(ctx, conf.Index, decision.TargetReads, decision.TargetWrites); err != nil {
		return fmt.Errorf("failed to update %s: %w", conf.Index, err)
	}

	if decision.ReadAction != scalingengine.ScalingActionNone {
		s.collector.IncCapacityUpdate("read", string(decision.ReadAction))
	}
	if decision.WriteAction != scalingengine.ScalingActionNone {
		s.collector.IncCapacityUpdate("write", string(decision.WriteAction))
	}
	logger.Info("capacity-updated", lager.Data{
		"current_reads":  decision.CurrentReads,
		"current_writes": decision.CurrentWrites,
	})
	return nil
}

func maximumReachedMessage(conf models.IndexScalingConfig, decision scalingengine.Decision) string {
	return fmt.Sprintf("Scaling has reached maximum provisioning and cannot increase further. "+
		"Index: %s, Consumed: (R: %.2f, W: %.2f), Target: (R: %d, W: %d), Config: (R: %d, W: %d). "+
		"Either modify the config or manually override the capacity in AWS.",
		conf.Index, decision.ConsumedReads, decision.ConsumedWrites,
		decision.TargetReads, decision.TargetWrites, conf.MaxRead, conf.MaxWrite)
}
