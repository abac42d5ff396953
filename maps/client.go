package maps

import (
	"net/http"
	"time"

	"github.com/okutan/mapkit/logger"
	"github.com/okutan/mapkit/observability"
	"github.com/okutan/mapkit/ratelimit"
	"github.com/okutan/mapkit/resilience"
)

// Default service endpoints. The roads service lives on its own host.
const (
	DefaultBaseURL      = "https://maps.googleapis.com/maps/api"
	DefaultRoadsBaseURL = "https://roads.googleapis.com/v1"

	defaultTimeout = 30 * time.Second
)

// Client holds the configuration shared by every request: the credential,
// the transport, the admission gate, and the retry policy. One Client is
// intended to live for the life of the process and be shared freely across
// goroutines.
type Client struct {
	apiKey       string
	httpClient   *http.Client
	gate         *ratelimit.Gate
	retry        resilience.Config
	log          *logger.Logger
	metrics      *observability.Metrics
	baseURL      string
	roadsBaseURL string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient installs a caller-supplied transport. The executor only
// needs its Do method; everything else about the transport is opaque.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithGate shares an existing admission gate, e.g. between two clients
// holding the same credential.
func WithGate(g *ratelimit.Gate) Option {
	return func(c *Client) { c.gate = g }
}

// WithRateLimits configures the client's own gate with per-service limits.
func WithRateLimits(cfg ratelimit.Config) Option {
	return func(c *Client) { c.gate = ratelimit.NewGate(cfg) }
}

// WithRetry replaces the retry policy.
func WithRetry(cfg resilience.Config) Option {
	return func(c *Client) { c.retry = cfg }
}

// WithLogger routes diagnostics into the given logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics installs the executor instrument set.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithBaseURL overrides the endpoint for the maps-host services.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithRoadsBaseURL overrides the endpoint for the roads service.
func WithRoadsBaseURL(u string) Option {
	return func(c *Client) { c.roadsBaseURL = u }
}

// NewClient creates a client around an opaque credential. Without options
// the client uses net/http defaults, an unlimited admission gate, the
// default retry policy, and discards diagnostics.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: defaultTimeout},
		gate:         ratelimit.NewGate(nil),
		retry:        resilience.DefaultConfig(),
		log:          logger.Nop(),
		baseURL:      DefaultBaseURL,
		roadsBaseURL: DefaultRoadsBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIKey returns the credential passed through to every query string.
func (c *Client) APIKey() string { return c.apiKey }

// BaseURL returns the endpoint for the maps-host services.
func (c *Client) BaseURL() string { return c.baseURL }

// RoadsBaseURL returns the endpoint for the roads service.
func (c *Client) RoadsBaseURL() string { return c.roadsBaseURL }

// Gate returns the client's shared admission gate.
func (c *Client) Gate() *ratelimit.Gate { return c.gate }
