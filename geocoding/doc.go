// Package geocoding resolves street addresses into geographic coordinates.
// It builds the query string and delegates execution to the maps client.
package geocoding
