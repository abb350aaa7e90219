package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/tablescaler/tablescaler/awsclient"
	"github.com/tablescaler/tablescaler/helpers"
	"github.com/tablescaler/tablescaler/models"
	"github.com/tablescaler/tablescaler/notification"
	"github.com/tablescaler/tablescaler/ratelimiter"
)

const (
	DefaultCheckInterval          = 60 * time.Second
	DefaultBreakerInitialInterval = 5 * time.Minute
	DefaultBreakerMaxInterval     = 2 * time.Hour
)

var defaultServerConfig = helpers.ServerConfig{
	Port: 8080,
}

var defaultRateLimitConfig = ratelimiter.Config{
	MaxAmount:     10,
	ValidDuration: time.Second,
}

var defaultHealthConfig = helpers.HealthConfig{
	ServerConfig: helpers.ServerConfig{
		Port: 8081,
	},
	ReadinessCheckEnabled: true,
}

var defaultLoggingConfig = helpers.LoggingConfig{
	Level: "info",
}

// ServerConfig configures the index admin API.
type ServerConfig struct {
	helpers.ServerConfig `yaml:",inline"`
	BasicAuth            models.BasicAuth   `yaml:"basic_auth"`
	RateLimit            ratelimiter.Config `yaml:"rate_limit"`
}

type ScalingConfig struct {
	CheckInterval         time.Duration              `yaml:"check_interval"`
	NotificationARN       string                     `yaml:"notification_arn"`
	MetricsLookbackBuffer time.Duration              `yaml:"metrics_lookback_buffer"`
	MetricsPeriod         time.Duration              `yaml:"metrics_period"`
	NotificationBreaker   notification.BreakerConfig `yaml:"notification_breaker"`
}

type Config struct {
	Logging helpers.LoggingConfig       `yaml:"logging"`
	Health  helpers.HealthConfig        `yaml:"health"`
	Server  ServerConfig                `yaml:"server"`
	AWS     awsclient.AWSConfig         `yaml:"aws"`
	Scaling ScalingConfig               `yaml:"scaling"`
	Indexes []models.IndexScalingConfig `yaml:"indexes"`
}

func defaultConfig() Config {
	return Config{
		Logging: defaultLoggingConfig,
		Health:  defaultHealthConfig,
		Server:  ServerConfig{ServerConfig: defaultServerConfig, RateLimit: defaultRateLimitConfig},
		Scaling: ScalingConfig{
			CheckInterval:         DefaultCheckInterval,
			MetricsLookbackBuffer: awsclient.DefaultLookbackBuffer,
			MetricsPeriod:         awsclient.DefaultMetricPeriod,
			NotificationBreaker: notification.BreakerConfig{
				BackOffInitialInterval: DefaultBreakerInitialInterval,
				BackOffMaxInterval:     DefaultBreakerMaxInterval,
			},
		},
	}
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := defaultConfig()

	bytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	err = yaml.UnmarshalStrict(bytes, &conf)
	if err != nil {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)

	return &conf, nil
}

// LoadConfigFile loads the YAML config at path.
func LoadConfigFile(path string) (*Config, error) {
	configFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = configFile.Close() }()

	return LoadConfig(configFile)
}

func (c *Config) GetLogging() *helpers.LoggingConfig {
	return &c.Logging
}

func (c *Config) Validate() error {
	if c.Scaling.CheckInterval <= 0 {
		return fmt.Errorf("Configuration error: scaling.check_interval is less than or equal to 0")
	}

	if c.Scaling.MetricsPeriod < time.Minute || c.Scaling.MetricsPeriod%time.Minute != 0 {
		return fmt.Errorf("Configuration error: scaling.metrics_period should be a positive multiple of 60s")
	}

	if c.Scaling.MetricsLookbackBuffer < 0 {
		return fmt.Errorf("Configuration error: scaling.metrics_lookback_buffer is less than 0")
	}

	breaker := c.Scaling.NotificationBreaker
	if breaker.ConsecutiveFailureCount > 0 {
		if breaker.BackOffInitialInterval <= 0 {
			return fmt.Errorf("Configuration error: scaling.notification_breaker.back_off_initial_interval is less than or equal to 0")
		}
		if breaker.BackOffMaxInterval < breaker.BackOffInitialInterval {
			return fmt.Errorf("Configuration error: scaling.notification_breaker.back_off_max_interval is less than back_off_initial_interval")
		}
	}

	if err := c.Health.Validate(); err != nil {
		return err
	}

	if err := c.Server.ServerConfig.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if c.Server.Port == c.Health.ServerConfig.Port {
		return fmt.Errorf("Configuration error: server.port and health.server_config.port are both %d", c.Server.Port)
	}

	if err := c.Server.BasicAuth.Validate(); err != nil {
		return err
	}

	if c.Server.RateLimit.MaxAmount < 0 {
		return fmt.Errorf("Configuration error: server.rate_limit.max_amount is less than 0")
	}

	if c.Server.RateLimit.IsEnabled() && c.Server.RateLimit.ValidDuration <= 0 {
		return fmt.Errorf("Configuration error: server.rate_limit.valid_duration is less than or equal to 0")
	}

	seen := make(map[models.Index]bool, len(c.Indexes))
	for i, index := range c.Indexes {
		if err := index.Validate(); err != nil {
			return fmt.Errorf("Configuration error: indexes[%d]: %w", i, err)
		}
		if seen[index.Index] {
			return fmt.Errorf("Configuration error: indexes[%d]: index %s is configured more than once", i, index.Index)
		}
		seen[index.Index] = true
	}

	return nil
}
