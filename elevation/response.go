package elevation

import (
	"github.com/okutan/mapkit/maps"
	"github.com/okutan/mapkit/types"
)

// Response is the elevation service reply.
type Response struct {
	Status       maps.Status `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	Results      []Result    `json:"results"`
}

// ServiceStatus reports the application-level status for classification.
func (r *Response) ServiceStatus() (maps.Status, string) {
	return r.Status, r.ErrorMessage
}

// Result is the elevation at one location.
type Result struct {
	// Elevation is meters above (or below) mean sea level.
	Elevation float64 `json:"elevation"`
	// Location is the point the elevation applies to. For sampled paths
	// this is the interpolated sample position, not an input coordinate.
	Location types.LatLng `json:"location"`
	// Resolution is the distance in meters between the data points the
	// elevation was interpolated from.
	Resolution float64 `json:"resolution,omitempty"`
}
