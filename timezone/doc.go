// Package timezone looks up the time zone of a coordinate at a point in
// time. It builds the query string and delegates execution to the maps
// client.
package timezone
