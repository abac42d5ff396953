package geocoding

import (
	"github.com/okutan/mapkit/maps"
	"github.com/okutan/mapkit/types"
)

// Response is the geocoding service reply.
type Response struct {
	Status       maps.Status `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	Results      []Result    `json:"results"`
}

// ServiceStatus reports the application-level status for classification.
func (r *Response) ServiceStatus() (maps.Status, string) {
	return r.Status, r.ErrorMessage
}

// Result is one geocoded match for the requested address.
type Result struct {
	FormattedAddress  string             `json:"formatted_address,omitempty"`
	Geometry          Geometry           `json:"geometry"`
	PlaceID           string             `json:"place_id,omitempty"`
	Types             []string           `json:"types,omitempty"`
	PartialMatch      bool               `json:"partial_match,omitempty"`
	AddressComponents []AddressComponent `json:"address_components,omitempty"`
}

// Geometry locates a result on the map.
type Geometry struct {
	Location     types.LatLng `json:"location"`
	LocationType string       `json:"location_type,omitempty"`
	Viewport     types.Bounds `json:"viewport"`
	Bounds       types.Bounds `json:"bounds,omitempty"`
}

// AddressComponent is one structured piece of the matched address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types,omitempty"`
}
