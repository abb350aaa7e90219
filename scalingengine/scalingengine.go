package scalingengine

import (
	"math"
	"time"

	"github.com/tablescaler/tablescaler/models"
)

type ScalingAction string

const (
	ScalingActionNone ScalingAction = "none"
	ScalingActionUp   ScalingAction = "up"
	ScalingActionDown ScalingAction = "down"
)

// Decision is the outcome of evaluating one index. It has no side effects;
// callers decide whether to act on it.
type Decision struct {
	Index          models.Index  `json:"index"`
	Overridden     bool          `json:"overridden"`
	ConsumedReads  float64       `json:"consumed_reads"`
	ConsumedWrites float64       `json:"consumed_writes"`
	CurrentReads   int64         `json:"current_reads"`
	CurrentWrites  int64         `json:"current_writes"`
	TargetReads    int64         `json:"target_reads"`
	TargetWrites   int64         `json:"target_writes"`
	ReadAction     ScalingAction `json:"read_action"`
	WriteAction    ScalingAction `json:"write_action"`
}

func (d Decision) ShouldUpdate() bool {
	return d.TargetReads != d.CurrentReads || d.TargetWrites != d.CurrentWrites
}

// IsOverridden reports whether the provisioned capacity was set outside the
// configured bounds, e.g. manually in the AWS console. An override on either
// dimension suspends scaling of the whole index.
func IsOverridden(conf models.IndexScalingConfig, snapshot models.ThroughputSnapshot) bool {
	return snapshot.ReadCapacity > conf.MaxRead ||
		snapshot.ReadCapacity < conf.MinRead ||
		snapshot.WriteCapacity > conf.MaxWrite ||
		snapshot.WriteCapacity < conf.MinWrite
}

func CanUpscale(conf models.IndexScalingConfig, snapshot models.ThroughputSnapshot) bool {
	return conf.EnableUpscale && !IsOverridden(conf, snapshot)
}

// CanDownscale also requires both the last decrease and the last increase to
// be older than the configured wait, so a freshly upscaled index is not
// immediately scaled back down.
func CanDownscale(conf models.IndexScalingConfig, snapshot models.ThroughputSnapshot, now time.Time) bool {
	return conf.EnableDownscale &&
		!IsOverridden(conf, snapshot) &&
		minutesBetween(snapshot.LastDecrease, now) > conf.DownscaleWaitMinutes &&
		minutesBetween(snapshot.LastIncrease, now) > conf.DownscaleWaitMinutes
}

// TargetCapacity multiplies current by scale, caps the result at max, floors
// it at min and truncates to whole capacity units. The result is unspecified
// when min > max; IndexScalingConfig.Validate rejects such configs.
func TargetCapacity(current int64, scale float64, min int64, max int64) int64 {
	target := math.Min(float64(current)*scale, float64(max))
	return int64(math.Max(target, float64(min)))
}

func ComputeTargets(conf models.IndexScalingConfig, snapshot models.ThroughputSnapshot, consumedReads float64, consumedWrites float64, now time.Time) Decision {
	upscale := CanUpscale(conf, snapshot)
	downscale := CanDownscale(conf, snapshot, now)

	decision := Decision{
		Index:          conf.Index,
		Overridden:     IsOverridden(conf, snapshot),
		ConsumedReads:  consumedReads,
		ConsumedWrites: consumedWrites,
		CurrentReads:   snapshot.ReadCapacity,
		CurrentWrites:  snapshot.WriteCapacity,
	}
	decision.TargetReads, decision.ReadAction = computeDimension(conf, upscale, downscale,
		snapshot.ReadCapacity, consumedReads, conf.MinRead, conf.MaxRead)
	decision.TargetWrites, decision.WriteAction = computeDimension(conf, upscale, downscale,
		snapshot.WriteCapacity, consumedWrites, conf.MinWrite, conf.MaxWrite)
	return decision
}

func computeDimension(conf models.IndexScalingConfig, upscale bool, downscale bool, current int64, consumed float64, min int64, max int64) (int64, ScalingAction) {
	// no provisioned capacity means there is no ratio to compare against
	if current <= 0 {
		return current, ScalingActionNone
	}
	percentConsumed := consumed / float64(current)

	if upscale && percentConsumed >= conf.UpscalePercent {
		return TargetCapacity(current, 1+conf.ScaleUpFactor, min, max), ScalingActionUp
	}
	if downscale && percentConsumed <= conf.DownscalePercent {
		return TargetCapacity(current, 1-conf.ScaleDownFactor, min, max), ScalingActionDown
	}
	return current, ScalingActionNone
}

// minutesBetween counts whole minutes elapsed from then to now.
func minutesBetween(then time.Time, now time.Time) int {
	return int(now.Sub(then) / time.Minute)
}
