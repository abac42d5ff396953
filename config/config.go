package config

import (
	"time"

	"github.com/okutan/mapkit/logger"
	"github.com/okutan/mapkit/ratelimit"
	"github.com/okutan/mapkit/resilience"
	"github.com/okutan/mapkit/validation"
)

// Config is the full client configuration surface.
type Config struct {
	// APIKey is the opaque credential appended to every query string.
	APIKey string `yaml:"api_key" mapstructure:"api_key" validate:"required"`

	// Endpoints override the default service hosts. Mostly for testing
	// and proxies.
	Endpoints Endpoints `yaml:"endpoints" mapstructure:"endpoints"`

	// Logging configures diagnostics output.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`

	// Retry configures the backoff policy applied to every request.
	Retry Retry `yaml:"retry" mapstructure:"retry"`

	// RateLimits configures per-service admission limits, keyed by quota
	// bucket name ("all", "directions", "geocoding", ...). Unlisted
	// buckets are unlimited.
	RateLimits map[string]ratelimit.Limit `yaml:"rate_limits" mapstructure:"rate_limits"`
}

// Endpoints holds the service base URLs.
type Endpoints struct {
	Maps  string `yaml:"maps" mapstructure:"maps" validate:"omitempty,url"`
	Roads string `yaml:"roads" mapstructure:"roads" validate:"omitempty,url"`
}

// Retry mirrors resilience.Config in a file-friendly shape.
type Retry struct {
	MaxAttempts    int           `yaml:"max_attempts" mapstructure:"max_attempts"`
	MaxElapsedTime time.Duration `yaml:"max_elapsed_time" mapstructure:"max_elapsed_time"`
	InitialBackoff time.Duration `yaml:"initial_backoff" mapstructure:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff" mapstructure:"max_backoff"`
	BackoffFactor  float64       `yaml:"backoff_factor" mapstructure:"backoff_factor"`
	Jitter         float64       `yaml:"jitter" mapstructure:"jitter" validate:"gte=0,lte=1"`
}

// ApplyDefaults fills zero values with the library defaults.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()

	def := resilience.DefaultConfig()
	if c.Retry.MaxAttempts <= 0 {
		c.Retry.MaxAttempts = def.MaxAttempts
	}
	if c.Retry.MaxElapsedTime <= 0 {
		c.Retry.MaxElapsedTime = def.MaxElapsedTime
	}
	if c.Retry.InitialBackoff <= 0 {
		c.Retry.InitialBackoff = def.InitialBackoff
	}
	if c.Retry.MaxBackoff <= 0 {
		c.Retry.MaxBackoff = def.MaxBackoff
	}
	if c.Retry.BackoffFactor <= 0 {
		c.Retry.BackoffFactor = def.BackoffFactor
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// ResilienceConfig converts the retry section for the executor.
func (c *Config) ResilienceConfig() resilience.Config {
	return resilience.Config{
		MaxAttempts:    c.Retry.MaxAttempts,
		MaxElapsedTime: c.Retry.MaxElapsedTime,
		InitialBackoff: c.Retry.InitialBackoff,
		MaxBackoff:     c.Retry.MaxBackoff,
		BackoffFactor:  c.Retry.BackoffFactor,
		Jitter:         c.Retry.Jitter,
	}
}

// RateLimitConfig converts the rate-limit section for the admission gate.
func (c *Config) RateLimitConfig() ratelimit.Config {
	if len(c.RateLimits) == 0 {
		return nil
	}
	cfg := make(ratelimit.Config, len(c.RateLimits))
	for name, limit := range c.RateLimits {
		cfg[ratelimit.Api(name)] = limit
	}
	return cfg
}
