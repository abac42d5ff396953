package directions

import (
	"context"
	"net/url"
	"strings"

	"github.com/okutan/mapkit/maps"
	"github.com/okutan/mapkit/ratelimit"
)

// Request describes one directions lookup. Construct it with NewRequest,
// refine it with the With* methods, then Validate, Build, and Get. Execute
// runs the three in sequence.
type Request struct {
	client       *maps.Client
	origin       Location
	destination  Location
	mode         TravelMode
	waypoints    []Location
	alternatives bool
	language     string
	region       string

	query string
}

// NewRequest starts a directions request between origin and destination.
func NewRequest(c *maps.Client, origin, destination Location) *Request {
	return &Request{client: c, origin: origin, destination: destination}
}

// WithTravelMode sets the mode of transport.
func (r *Request) WithTravelMode(mode TravelMode) *Request {
	r.mode = mode
	return r
}

// WithWaypoints routes the journey through the given points, in order.
func (r *Request) WithWaypoints(wps ...Location) *Request {
	r.waypoints = append(r.waypoints, wps...)
	return r
}

// WithAlternatives requests more than one route when available.
func (r *Request) WithAlternatives(alternatives bool) *Request {
	r.alternatives = alternatives
	return r
}

// WithLanguage sets the language for textual results.
func (r *Request) WithLanguage(language string) *Request {
	r.language = language
	return r
}

// WithRegion biases results toward the given region code.
func (r *Request) WithRegion(region string) *Request {
	r.region = region
	return r
}

// Validate checks the request parameters.
func (r *Request) Validate() error {
	if r.origin.IsZero() {
		return maps.NewValidationError("directions", "origin is required")
	}
	if r.destination.IsZero() {
		return maps.NewValidationError("directions", "destination is required")
	}
	if err := r.origin.Validate(); err != nil {
		return maps.NewValidationError("directions", "origin: "+err.Error())
	}
	if err := r.destination.Validate(); err != nil {
		return maps.NewValidationError("directions", "destination: "+err.Error())
	}
	for _, wp := range r.waypoints {
		if err := wp.Validate(); err != nil {
			return maps.NewValidationError("directions", "waypoint: "+err.Error())
		}
	}
	return nil
}

// Build assembles the query string. Get refuses to run until Build has.
func (r *Request) Build() *Request {
	q := url.Values{}
	q.Set("key", r.client.APIKey())
	q.Set("origin", r.origin.String())
	q.Set("destination", r.destination.String())
	if r.mode != "" {
		q.Set("mode", string(r.mode))
	}
	if len(r.waypoints) > 0 {
		parts := make([]string, len(r.waypoints))
		for i, wp := range r.waypoints {
			parts[i] = wp.String()
		}
		q.Set("waypoints", strings.Join(parts, "|"))
	}
	if r.alternatives {
		q.Set("alternatives", "true")
	}
	if r.language != "" {
		q.Set("language", r.language)
	}
	if r.region != "" {
		q.Set("region", r.region)
	}
	r.query = q.Encode()
	return r
}

// Query returns the built query string, empty before Build.
func (r *Request) Query() string { return r.query }

// Get performs the request.
func (r *Request) Get(ctx context.Context) (*Response, error) {
	return maps.Execute[Response](ctx, r.client, maps.Request{
		Service: "directions",
		URL:     r.client.BaseURL() + "/directions/json",
		Query:   r.query,
		Apis:    []ratelimit.Api{ratelimit.All, ratelimit.Directions},
	})
}

// Execute validates, builds, and performs the request.
func (r *Request) Execute(ctx context.Context) (*Response, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.Build().Get(ctx)
}
