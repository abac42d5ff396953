// Package maps contains the request execution engine shared by every
// service client in this module.
//
// A service package (directions, geocoding, elevation, roads, timezone)
// builds a query string and hands it to Execute, which coordinates three
// concerns for every request:
//
//   - admission control through the client's shared ratelimit.Gate,
//     consulted before every attempt
//   - classification of each attempt at three layers (transport, HTTP
//     status, application status embedded in the body) into success,
//     retryable, or permanent
//   - the retry loop from package resilience, with exponential backoff
//
// Callers receive either a fully decoded response or a single *Error
// carrying the classified cause; partial states never escape.
package maps
