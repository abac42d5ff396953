package elevation

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/okutan/mapkit/maps"
	"github.com/okutan/mapkit/ratelimit"
	"github.com/okutan/mapkit/types"
)

// maxSamples is the largest sample count the service accepts along a path.
const maxSamples = 512

// Request describes one elevation lookup. A request is either positional
// (ForLocations) or sampled along a path (ForSampledPath); setting both is
// a validation error.
type Request struct {
	client    *maps.Client
	locations []types.LatLng
	path      []types.LatLng
	samples   int

	query string
}

// NewRequest starts an empty elevation request. Give it locations or a
// sampled path before executing.
func NewRequest(c *maps.Client) *Request {
	return &Request{client: c}
}

// ForLocations requests elevation at each discrete coordinate.
func (r *Request) ForLocations(lls ...types.LatLng) *Request {
	r.locations = append(r.locations, lls...)
	return r
}

// ForSampledPath requests elevation at evenly spaced samples along a path.
func (r *Request) ForSampledPath(path []types.LatLng, samples int) *Request {
	r.path = path
	r.samples = samples
	return r
}

// Validate checks the request parameters: exactly one of the positional
// and sampled-path forms must be set.
func (r *Request) Validate() error {
	if len(r.locations) > 0 && len(r.path) > 0 {
		return maps.NewValidationError("elevation", "positional locations and a sampled path may not both be set")
	}
	if len(r.locations) == 0 && len(r.path) == 0 {
		return maps.NewValidationError("elevation", "locations or a sampled path is required")
	}
	if len(r.path) > 0 {
		if r.samples < 1 || r.samples > maxSamples {
			return maps.NewValidationError("elevation",
				fmt.Sprintf("samples must be between 1 and %d, got %d", maxSamples, r.samples))
		}
	}
	for _, ll := range r.locations {
		if err := ll.Validate(); err != nil {
			return maps.NewValidationError("elevation", "location: "+err.Error())
		}
	}
	for _, ll := range r.path {
		if err := ll.Validate(); err != nil {
			return maps.NewValidationError("elevation", "path: "+err.Error())
		}
	}
	return nil
}

// Build assembles the query string. Get refuses to run until Build has.
func (r *Request) Build() *Request {
	q := url.Values{}
	q.Set("key", r.client.APIKey())
	if len(r.locations) > 0 {
		q.Set("locations", types.JoinLatLngs(r.locations))
	}
	if len(r.path) > 0 {
		q.Set("path", types.JoinLatLngs(r.path))
		q.Set("samples", strconv.Itoa(r.samples))
	}
	r.query = q.Encode()
	return r
}

// Query returns the built query string, empty before Build.
func (r *Request) Query() string { return r.query }

// Get performs the request.
func (r *Request) Get(ctx context.Context) (*Response, error) {
	return maps.Execute[Response](ctx, r.client, maps.Request{
		Service: "elevation",
		URL:     r.client.BaseURL() + "/elevation/json",
		Query:   r.query,
		Apis:    []ratelimit.Api{ratelimit.All, ratelimit.Elevation},
	})
}

// Execute validates, builds, and performs the request.
func (r *Request) Execute(ctx context.Context) (*Response, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.Build().Get(ctx)
}
