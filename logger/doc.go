// Package logger wraps zerolog with the structured fields mapkit emits
// while executing requests: the service being called, the request id, the
// attempt number, and the response status. The library logs nothing above
// debug on the happy path except one info event per completed request.
package logger
