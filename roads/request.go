package roads

import (
	"context"
	"net/url"

	"github.com/okutan/mapkit/maps"
	"github.com/okutan/mapkit/ratelimit"
	"github.com/okutan/mapkit/types"
)

// maxPathPoints is the largest trace the snap endpoint accepts.
const maxPathPoints = 100

// SnapRequest describes one snap-to-roads lookup. Construct it with
// NewSnapRequest, then Validate, Build, and Get. Execute runs the three in
// sequence.
type SnapRequest struct {
	client      *maps.Client
	path        []types.LatLng
	interpolate bool

	query string
}

// NewSnapRequest starts a snap-to-roads request for the given GPS trace.
func NewSnapRequest(c *maps.Client, path ...types.LatLng) *SnapRequest {
	return &SnapRequest{client: c, path: path}
}

// WithInterpolate asks the service to add points so the snapped path
// follows the road geometry smoothly.
func (r *SnapRequest) WithInterpolate(interpolate bool) *SnapRequest {
	r.interpolate = interpolate
	return r
}

// Validate checks the request parameters.
func (r *SnapRequest) Validate() error {
	if len(r.path) == 0 {
		return maps.NewValidationError("roads", "a path with at least one point is required")
	}
	if len(r.path) > maxPathPoints {
		return maps.NewValidationError("roads", "the path may not exceed 100 points")
	}
	for _, ll := range r.path {
		if err := ll.Validate(); err != nil {
			return maps.NewValidationError("roads", "path: "+err.Error())
		}
	}
	return nil
}

// Build assembles the query string. Get refuses to run until Build has.
func (r *SnapRequest) Build() *SnapRequest {
	q := url.Values{}
	q.Set("key", r.client.APIKey())
	q.Set("path", types.JoinLatLngs(r.path))
	if r.interpolate {
		q.Set("interpolate", "true")
	}
	r.query = q.Encode()
	return r
}

// Query returns the built query string, empty before Build.
func (r *SnapRequest) Query() string { return r.query }

// Get performs the request against the roads host.
func (r *SnapRequest) Get(ctx context.Context) (*SnapResponse, error) {
	return maps.Execute[SnapResponse](ctx, r.client, maps.Request{
		Service: "roads",
		URL:     r.client.RoadsBaseURL() + "/snapToRoads",
		Query:   r.query,
		Apis:    []ratelimit.Api{ratelimit.All, ratelimit.Roads},
	})
}

// Execute validates, builds, and performs the request.
func (r *SnapRequest) Execute(ctx context.Context) (*SnapResponse, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.Build().Get(ctx)
}
