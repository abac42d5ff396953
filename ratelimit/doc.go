// Package ratelimit provides client-side admission control for the remote
// geospatial services.
//
// A single Gate is shared by every request issued through a client. Each
// logical service (directions, geocoding, ...) draws from its own token
// bucket, and every request additionally draws from the All bucket, so a
// global ceiling can be enforced alongside per-service ceilings:
//
//	gate := ratelimit.NewGate(ratelimit.Config{
//	    ratelimit.All:        {Requests: 50, Per: time.Second},
//	    ratelimit.Geocoding:  {Requests: 10, Per: time.Second},
//	})
//	err := gate.Wait(ctx, ratelimit.All, ratelimit.Geocoding)
//
// Wait only fails on context cancellation; a cancelled wait consumes no
// tokens. Waiters are not served FIFO, only the configured rates hold.
package ratelimit
