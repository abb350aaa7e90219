package helpers

import (
	"fmt"

	"github.com/tablescaler/tablescaler/models"
)

// HealthConfig configures the server exposing prometheus metrics and the
// readiness endpoint.
type HealthConfig struct {
	ServerConfig          ServerConfig     `yaml:"server_config" json:"server_config"`
	BasicAuth             models.BasicAuth `yaml:"basic_auth" json:"basic_auth"`
	ReadinessCheckEnabled bool             `yaml:"readiness_enabled" json:"readiness_enabled"`
}

func (c *HealthConfig) Validate() error {
	if err := c.ServerConfig.Validate(); err != nil {
		return fmt.Errorf("health.server_config: %w", err)
	}
	return c.BasicAuth.Validate()
}
