package types

import (
	"fmt"
	"strconv"
	"strings"
)

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewLatLng creates a LatLng and validates the coordinate ranges.
func NewLatLng(lat, lng float64) (LatLng, error) {
	ll := LatLng{Lat: lat, Lng: lng}
	if err := ll.Validate(); err != nil {
		return LatLng{}, err
	}
	return ll, nil
}

// Validate checks that the coordinate is within the valid degree ranges.
func (ll LatLng) Validate() error {
	if ll.Lat < -90 || ll.Lat > 90 {
		return fmt.Errorf("types: latitude %v out of range [-90, 90]", ll.Lat)
	}
	if ll.Lng < -180 || ll.Lng > 180 {
		return fmt.Errorf("types: longitude %v out of range [-180, 180]", ll.Lng)
	}
	return nil
}

// String formats the coordinate as "lat,lng" with up to seven decimal
// places, the precision the services accept.
func (ll LatLng) String() string {
	return formatCoord(ll.Lat) + "," + formatCoord(ll.Lng)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseLatLng parses a "lat,lng" string.
func ParseLatLng(s string) (LatLng, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return LatLng{}, fmt.Errorf("types: invalid lat/lng string %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("types: invalid latitude in %q", s)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("types: invalid longitude in %q", s)
	}
	return NewLatLng(lat, lng)
}

// JoinLatLngs renders a path of coordinates as a pipe-delimited list, the
// format shared by the elevation and roads query parameters.
func JoinLatLngs(lls []LatLng) string {
	parts := make([]string, len(lls))
	for i, ll := range lls {
		parts[i] = ll.String()
	}
	return strings.Join(parts, "|")
}
