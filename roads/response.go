package roads

import (
	"github.com/okutan/mapkit/maps"
)

// SnapResponse is the snap-to-roads reply. Unlike the maps-host services
// it carries no top-level status; failure arrives as an embedded Error.
type SnapResponse struct {
	SnappedPoints  []SnappedPoint `json:"snappedPoints"`
	WarningMessage string         `json:"warningMessage,omitempty"`
	Error          *Error         `json:"error,omitempty"`
}

// ServiceStatus adapts the embedded error shape onto the common
// classification: no embedded error means success, any embedded error is a
// domain-level failure carrying the service's own status string.
func (r *SnapResponse) ServiceStatus() (maps.Status, string) {
	if r.Error == nil {
		return maps.StatusOK, ""
	}
	return maps.Status(r.Error.Status), r.Error.Message
}

// Error is the embedded failure object the roads service returns.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// SnappedPoint is one trace point aligned to the road network.
type SnappedPoint struct {
	Location Coordinate `json:"location"`
	// OriginalIndex is the index of the input point this snapped point
	// corresponds to; nil for points added by interpolation.
	OriginalIndex *int   `json:"originalIndex,omitempty"`
	PlaceID       string `json:"placeId,omitempty"`
}

// Coordinate is the roads-service coordinate shape, which spells out the
// field names instead of using lat/lng.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
