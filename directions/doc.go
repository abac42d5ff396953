// Package directions requests routes between an origin and a destination,
// optionally via waypoints. It builds the query string and delegates
// execution to the maps client.
package directions
