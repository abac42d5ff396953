// Package observability provides optional OpenTelemetry tracing and
// metrics for mapkit.
//
// The executor emits one span per request with per-attempt events, and, if
// a Metrics instance is installed on the client, counts attempts and
// retries and times requests. InitTracer and InitMeter bootstrap OTLP/HTTP
// exporters for applications that do not already configure OpenTelemetry
// themselves; both are optional — without them the global no-op providers
// are used and the instrumentation costs nothing.
package observability
