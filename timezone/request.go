package timezone

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/okutan/mapkit/maps"
	"github.com/okutan/mapkit/ratelimit"
	"github.com/okutan/mapkit/types"
)

// Request describes one time-zone lookup. Construct it with NewRequest,
// then Validate, Build, and Get. Execute runs the three in sequence.
type Request struct {
	client    *maps.Client
	location  types.LatLng
	timestamp time.Time
	language  string

	query string
}

// NewRequest starts a time-zone request for the given coordinate. The
// timestamp determines whether daylight-savings rules apply.
func NewRequest(c *maps.Client, location types.LatLng, timestamp time.Time) *Request {
	return &Request{client: c, location: location, timestamp: timestamp}
}

// WithLanguage sets the language for the zone name.
func (r *Request) WithLanguage(language string) *Request {
	r.language = language
	return r
}

// Validate checks the request parameters.
func (r *Request) Validate() error {
	if err := r.location.Validate(); err != nil {
		return maps.NewValidationError("timezone", "location: "+err.Error())
	}
	if r.timestamp.IsZero() {
		return maps.NewValidationError("timezone", "a timestamp is required")
	}
	return nil
}

// Build assembles the query string. Get refuses to run until Build has.
func (r *Request) Build() *Request {
	q := url.Values{}
	q.Set("key", r.client.APIKey())
	q.Set("location", r.location.String())
	q.Set("timestamp", strconv.FormatInt(r.timestamp.Unix(), 10))
	if r.language != "" {
		q.Set("language", r.language)
	}
	r.query = q.Encode()
	return r
}

// Query returns the built query string, empty before Build.
func (r *Request) Query() string { return r.query }

// Get performs the request.
func (r *Request) Get(ctx context.Context) (*Response, error) {
	return maps.Execute[Response](ctx, r.client, maps.Request{
		Service: "timezone",
		URL:     r.client.BaseURL() + "/timezone/json",
		Query:   r.query,
		Apis:    []ratelimit.Api{ratelimit.All, ratelimit.TimeZone},
	})
}

// Execute validates, builds, and performs the request.
func (r *Request) Execute(ctx context.Context) (*Response, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.Build().Get(ctx)
}
