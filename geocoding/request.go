package geocoding

import (
	"context"
	"net/url"
	"strings"

	"github.com/okutan/mapkit/maps"
	"github.com/okutan/mapkit/ratelimit"
	"github.com/okutan/mapkit/types"
)

// ComponentFilter restricts results to those matching a component.
type ComponentFilter string

// Supported component filters.
const (
	FilterRoute              ComponentFilter = "route"
	FilterLocality           ComponentFilter = "locality"
	FilterAdministrativeArea ComponentFilter = "administrative_area"
	FilterPostalCode         ComponentFilter = "postal_code"
	FilterCountry            ComponentFilter = "country"
)

// Component pairs a filter with the value it must match.
type Component struct {
	Filter ComponentFilter
	Value  string
}

// Request describes one forward-geocoding lookup. Construct it with
// NewRequest, refine it with the With* methods, then Validate, Build, and
// Get. Execute runs the three in sequence.
type Request struct {
	client     *maps.Client
	address    string
	bounds     *types.Bounds
	region     string
	language   string
	components []Component

	query string
}

// NewRequest starts a forward-geocoding request for the given address.
func NewRequest(c *maps.Client, address string) *Request {
	return &Request{client: c, address: address}
}

// WithBounds biases results toward the given bounding box.
func (r *Request) WithBounds(b types.Bounds) *Request {
	r.bounds = &b
	return r
}

// WithRegion biases results toward the given region code.
func (r *Request) WithRegion(region string) *Request {
	r.region = region
	return r
}

// WithLanguage sets the language for textual results.
func (r *Request) WithLanguage(language string) *Request {
	r.language = language
	return r
}

// WithComponents restricts results to those matching every filter.
func (r *Request) WithComponents(cs ...Component) *Request {
	r.components = append(r.components, cs...)
	return r
}

// Validate checks the request parameters. An address or at least one
// component filter must be present.
func (r *Request) Validate() error {
	if r.address == "" && len(r.components) == 0 {
		return maps.NewValidationError("geocoding", "an address or a component filter is required")
	}
	if r.bounds != nil {
		if err := r.bounds.Validate(); err != nil {
			return maps.NewValidationError("geocoding", "bounds: "+err.Error())
		}
	}
	for _, comp := range r.components {
		if comp.Filter == "" || comp.Value == "" {
			return maps.NewValidationError("geocoding", "component filters need both a filter and a value")
		}
	}
	return nil
}

// Build assembles the query string. Get refuses to run until Build has.
func (r *Request) Build() *Request {
	q := url.Values{}
	q.Set("key", r.client.APIKey())
	if r.address != "" {
		q.Set("address", r.address)
	}
	if r.bounds != nil {
		q.Set("bounds", r.bounds.String())
	}
	if r.region != "" {
		q.Set("region", r.region)
	}
	if r.language != "" {
		q.Set("language", r.language)
	}
	if len(r.components) > 0 {
		parts := make([]string, len(r.components))
		for i, comp := range r.components {
			parts[i] = string(comp.Filter) + ":" + comp.Value
		}
		q.Set("components", strings.Join(parts, "|"))
	}
	r.query = q.Encode()
	return r
}

// Query returns the built query string, empty before Build.
func (r *Request) Query() string { return r.query }

// Get performs the request.
func (r *Request) Get(ctx context.Context) (*Response, error) {
	return maps.Execute[Response](ctx, r.client, maps.Request{
		Service: "geocoding",
		URL:     r.client.BaseURL() + "/geocode/json",
		Query:   r.query,
		Apis:    []ratelimit.Api{ratelimit.All, ratelimit.Geocoding},
	})
}

// Execute validates, builds, and performs the request.
func (r *Request) Execute(ctx context.Context) (*Response, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.Build().Get(ctx)
}
