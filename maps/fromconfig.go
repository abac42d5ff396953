package maps

import (
	"github.com/okutan/mapkit/config"
	"github.com/okutan/mapkit/logger"
)

// NewClientFromConfig builds a client from a loaded configuration,
// honoring its endpoints, retry policy, rate limits, and logging section.
// Additional options are applied afterwards and may override any of them.
func NewClientFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []Option{
		WithRetry(cfg.ResilienceConfig()),
		WithLogger(logger.New(&cfg.Logging)),
	}
	if rl := cfg.RateLimitConfig(); rl != nil {
		base = append(base, WithRateLimits(rl))
	}
	if cfg.Endpoints.Maps != "" {
		base = append(base, WithBaseURL(cfg.Endpoints.Maps))
	}
	if cfg.Endpoints.Roads != "" {
		base = append(base, WithRoadsBaseURL(cfg.Endpoints.Roads))
	}

	return NewClient(cfg.APIKey, append(base, opts...)...), nil
}
