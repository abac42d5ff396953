package directions

import (
	"github.com/okutan/mapkit/maps"
	"github.com/okutan/mapkit/types"
)

// Response is the directions service reply.
type Response struct {
	Status            maps.Status        `json:"status"`
	ErrorMessage      string             `json:"error_message,omitempty"`
	GeocodedWaypoints []GeocodedWaypoint `json:"geocoded_waypoints,omitempty"`
	Routes            []Route            `json:"routes"`
}

// ServiceStatus reports the application-level status for classification.
func (r *Response) ServiceStatus() (maps.Status, string) {
	return r.Status, r.ErrorMessage
}

// GeocodedWaypoint describes how one requested location was resolved.
type GeocodedWaypoint struct {
	GeocoderStatus string   `json:"geocoder_status,omitempty"`
	PartialMatch   bool     `json:"partial_match,omitempty"`
	PlaceID        string   `json:"place_id,omitempty"`
	Types          []string `json:"types,omitempty"`
}

// Route is one way of getting from the origin to the destination.
type Route struct {
	Summary          string       `json:"summary,omitempty"`
	Legs             []Leg        `json:"legs"`
	OverviewPolyline Polyline     `json:"overview_polyline"`
	Bounds           types.Bounds `json:"bounds"`
	Warnings         []string     `json:"warnings,omitempty"`
	WaypointOrder    []int        `json:"waypoint_order,omitempty"`
}

// Leg is the portion of a route between two consecutive stops.
type Leg struct {
	Distance      TextValue    `json:"distance"`
	Duration      TextValue    `json:"duration"`
	StartAddress  string       `json:"start_address,omitempty"`
	EndAddress    string       `json:"end_address,omitempty"`
	StartLocation types.LatLng `json:"start_location"`
	EndLocation   types.LatLng `json:"end_location"`
	Steps         []Step       `json:"steps,omitempty"`
}

// Step is one navigation instruction within a leg.
type Step struct {
	Distance         TextValue    `json:"distance"`
	Duration         TextValue    `json:"duration"`
	StartLocation    types.LatLng `json:"start_location"`
	EndLocation      types.LatLng `json:"end_location"`
	HTMLInstructions string       `json:"html_instructions,omitempty"`
	Polyline         Polyline     `json:"polyline"`
	TravelMode       string       `json:"travel_mode,omitempty"`
}

// TextValue pairs a human-readable rendering with its numeric value, in
// meters for distances and seconds for durations.
type TextValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

// Polyline holds an encoded polyline.
type Polyline struct {
	Points string `json:"points"`
}
