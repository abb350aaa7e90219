package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	DefaultMinCapacity          int64   = 5
	DefaultMaxCapacity          int64   = 50
	DefaultUpscalePercent       float64 = 0.85
	DefaultDownscalePercent     float64 = 0.15
	DefaultScaleUpFactor        float64 = 0.50
	DefaultScaleDownFactor      float64 = 0.80
	DefaultDownscaleWaitMinutes         = 60
)

var ErrInvalidScalingConfig = errors.New("invalid index scaling config")

// IndexScalingConfig holds the scaling bounds and thresholds of one index.
//
// UpscalePercent and DownscalePercent are compared against consumed/provisioned.
// A scale up multiplies the current capacity by (1 + ScaleUpFactor), a scale
// down by (1 - ScaleDownFactor). DownscaleWaitMinutes throttles decreases since
// DynamoDB only allows a few of them per day.
type IndexScalingConfig struct {
	Index                `yaml:",inline" json:",inline"`
	MinRead              int64   `yaml:"min_read" json:"min_read"`
	MaxRead              int64   `yaml:"max_read" json:"max_read"`
	MinWrite             int64   `yaml:"min_write" json:"min_write"`
	MaxWrite             int64   `yaml:"max_write" json:"max_write"`
	EnableUpscale        bool    `yaml:"enable_upscale" json:"enable_upscale"`
	EnableDownscale      bool    `yaml:"enable_downscale" json:"enable_downscale"`
	UpscalePercent       float64 `yaml:"upscale_percent" json:"upscale_percent"`
	DownscalePercent     float64 `yaml:"downscale_percent" json:"downscale_percent"`
	ScaleUpFactor        float64 `yaml:"scale_up_factor" json:"scale_up_factor"`
	ScaleDownFactor      float64 `yaml:"scale_down_factor" json:"scale_down_factor"`
	DownscaleWaitMinutes int     `yaml:"downscale_wait_minutes" json:"downscale_wait_minutes"`
}

// NewIndexScalingConfig returns the default configuration for the index.
func NewIndexScalingConfig(index Index) IndexScalingConfig {
	return IndexScalingConfig{
		Index:                index,
		MinRead:              DefaultMinCapacity,
		MaxRead:              DefaultMaxCapacity,
		MinWrite:             DefaultMinCapacity,
		MaxWrite:             DefaultMaxCapacity,
		EnableUpscale:        true,
		EnableDownscale:      true,
		UpscalePercent:       DefaultUpscalePercent,
		DownscalePercent:     DefaultDownscalePercent,
		ScaleUpFactor:        DefaultScaleUpFactor,
		ScaleDownFactor:      DefaultScaleDownFactor,
		DownscaleWaitMinutes: DefaultDownscaleWaitMinutes,
	}
}

type plainIndexScalingConfig IndexScalingConfig

// UnmarshalYAML starts from the defaults so that omitted fields keep them.
func (c *IndexScalingConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	conf := plainIndexScalingConfig(NewIndexScalingConfig(Index{}))
	if err := unmarshal(&conf); err != nil {
		return err
	}
	*c = IndexScalingConfig(conf)
	return nil
}

func (c *IndexScalingConfig) UnmarshalJSON(data []byte) error {
	conf := plainIndexScalingConfig(NewIndexScalingConfig(Index{}))
	if err := json.Unmarshal(data, &conf); err != nil {
		return err
	}
	*c = IndexScalingConfig(conf)
	return nil
}

// Validate rejects configurations whose clamp or threshold semantics would be
// undefined. It does not talk to AWS, so a missing table or GSI is only found
// when the index is checked.
func (c IndexScalingConfig) Validate() error {
	switch {
	case c.TableName == "":
		return fmt.Errorf("%w: table_name is empty", ErrInvalidScalingConfig)
	case c.MinRead < 1 || c.MinWrite < 1:
		return fmt.Errorf("%w: %s: min_read and min_write must be at least 1", ErrInvalidScalingConfig, c.Index)
	case c.MinRead > c.MaxRead:
		return fmt.Errorf("%w: %s: min_read %d is greater than max_read %d", ErrInvalidScalingConfig, c.Index, c.MinRead, c.MaxRead)
	case c.MinWrite > c.MaxWrite:
		return fmt.Errorf("%w: %s: min_write %d is greater than max_write %d", ErrInvalidScalingConfig, c.Index, c.MinWrite, c.MaxWrite)
	case !isFraction(c.UpscalePercent):
		return fmt.Errorf("%w: %s: upscale_percent must be between 0 and 1", ErrInvalidScalingConfig, c.Index)
	case !isFraction(c.DownscalePercent):
		return fmt.Errorf("%w: %s: downscale_percent must be between 0 and 1", ErrInvalidScalingConfig, c.Index)
	case c.ScaleUpFactor < 0:
		return fmt.Errorf("%w: %s: scale_up_factor must not be negative", ErrInvalidScalingConfig, c.Index)
	case !isFraction(c.ScaleDownFactor):
		return fmt.Errorf("%w: %s: scale_down_factor must be between 0 and 1", ErrInvalidScalingConfig, c.Index)
	case c.DownscaleWaitMinutes < 0:
		return fmt.Errorf("%w: %s: downscale_wait_minutes must not be negative", ErrInvalidScalingConfig, c.Index)
	}
	return nil
}

func isFraction(f float64) bool {
	return f >= 0 && f <= 1
}
