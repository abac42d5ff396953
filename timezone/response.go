package timezone

import (
	"time"

	"github.com/okutan/mapkit/maps"
)

// Response is the time-zone service reply. The local time at the queried
// location is the request timestamp plus DstOffset plus RawOffset.
type Response struct {
	Status       maps.Status `json:"status"`
	ErrorMessage string      `json:"errorMessage,omitempty"`

	// DstOffset is the daylight-savings offset in seconds, zero when the
	// zone is not observing daylight savings at the queried timestamp.
	DstOffset int `json:"dstOffset"`
	// RawOffset is the offset from UTC in seconds, ignoring daylight
	// savings.
	RawOffset int `json:"rawOffset"`
	// TimeZoneID is the zone identifier, e.g. "America/Los_Angeles".
	TimeZoneID string `json:"timeZoneId,omitempty"`
	// TimeZoneName is the long-form localized zone name.
	TimeZoneName string `json:"timeZoneName,omitempty"`
}

// ServiceStatus reports the application-level status for classification.
func (r *Response) ServiceStatus() (maps.Status, string) {
	return r.Status, r.ErrorMessage
}

// LocalTime applies the zone offsets to the given instant.
func (r *Response) LocalTime(at time.Time) time.Time {
	return at.Add(time.Duration(r.DstOffset+r.RawOffset) * time.Second)
}
