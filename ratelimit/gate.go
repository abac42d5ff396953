package ratelimit

import "time"

// Api identifies the quota bucket a request draws from.
type Api string

// Known quota buckets. All is drawn alongside the concrete bucket by every
// request, so it acts as a global ceiling.
const (
	All        Api = "all"
	Directions Api = "directions"
	Elevation  Api = "elevation"
	Geocoding  Api = "geocoding"
	Roads      Api = "roads"
	TimeZone   Api = "timezone"
)

// Limit allows Requests admissions per rolling window of length Per.
type Limit struct {
	Requests int           `yaml:"requests" mapstructure:"requests"`
	Per      time.Duration `yaml:"per" mapstructure:"per"`
}

// rate returns the refill rate in tokens per second.
func (l Limit) rate() float64 {
	if l.Per <= 0 {
		return 0
	}
	return float64(l.Requests) / l.Per.Seconds()
}

// Config maps quota buckets to their limits. Buckets absent from the
// config are unlimited.
type Config map[Api]Limit
