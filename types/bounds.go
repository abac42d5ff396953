package types

import (
	"fmt"
	"strings"
)

// Bounds is a bounding box over a geographic area, defined by its
// southwest and northeast corners.
type Bounds struct {
	Southwest LatLng `json:"southwest"`
	Northeast LatLng `json:"northeast"`
}

// String renders the box as two pipe-delimited lat/lng pairs,
// "sw_lat,sw_lng|ne_lat,ne_lng", the query-parameter wire format.
func (b Bounds) String() string {
	return b.Southwest.String() + "|" + b.Northeast.String()
}

// Validate checks both corners.
func (b Bounds) Validate() error {
	if err := b.Southwest.Validate(); err != nil {
		return err
	}
	return b.Northeast.Validate()
}

// ParseBounds parses two pipe-delimited lat/lng pairs into a Bounds.
func ParseBounds(s string) (Bounds, error) {
	corners := strings.Split(strings.TrimSpace(s), "|")
	if len(corners) != 2 {
		return Bounds{}, fmt.Errorf("types: invalid bounds string %q", s)
	}
	sw, err := ParseLatLng(corners[0])
	if err != nil {
		return Bounds{}, fmt.Errorf("types: invalid bounds southwest corner: %w", err)
	}
	ne, err := ParseLatLng(corners[1])
	if err != nil {
		return Bounds{}, fmt.Errorf("types: invalid bounds northeast corner: %w", err)
	}
	return Bounds{Southwest: sw, Northeast: ne}, nil
}
