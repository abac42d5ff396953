// Package elevation looks up ground elevation for discrete locations or
// for samples along a path. It builds the query string and delegates
// execution to the maps client.
package elevation
