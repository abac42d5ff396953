package directions

import (
	"github.com/okutan/mapkit/types"
)

// Location is an origin, destination, or waypoint. Exactly one of its
// forms is set.
type Location struct {
	address string
	latlng  *types.LatLng
	placeID string
}

// Address locates by street address or plain-text description.
func Address(addr string) Location {
	return Location{address: addr}
}

// Coordinate locates by latitude/longitude.
func Coordinate(ll types.LatLng) Location {
	return Location{latlng: &ll}
}

// PlaceID locates by place identifier.
func PlaceID(id string) Location {
	return Location{placeID: id}
}

// IsZero reports whether no form was set.
func (l Location) IsZero() bool {
	return l.address == "" && l.latlng == nil && l.placeID == ""
}

// String renders the location in query-parameter form.
func (l Location) String() string {
	switch {
	case l.latlng != nil:
		return l.latlng.String()
	case l.placeID != "":
		return "place_id:" + l.placeID
	default:
		return l.address
	}
}

// Validate checks coordinate ranges when the location is a coordinate.
func (l Location) Validate() error {
	if l.latlng != nil {
		return l.latlng.Validate()
	}
	return nil
}

// TravelMode selects the mode of transport for the route.
type TravelMode string

// Supported travel modes.
const (
	ModeDriving   TravelMode = "driving"
	ModeWalking   TravelMode = "walking"
	ModeBicycling TravelMode = "bicycling"
	ModeTransit   TravelMode = "transit"
)
