package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MeterConfig configures the OpenTelemetry meter bootstrap.
type MeterConfig struct {
	// ServiceName is the name of the embedding application.
	ServiceName string
	// ServiceVersion is the version of the embedding application.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the global OpenTelemetry meter provider with an
// OTLP/HTTP exporter. Returns a MeterProvider that should be shut down on
// application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// Metrics holds the instruments the executor records into. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	attemptTotal    metric.Int64Counter
	retryTotal      metric.Int64Counter
	requestDuration metric.Float64Histogram
}

// NewMetrics creates the executor instrument set on the given meter. Pass
// the result to the client with maps.WithMetrics.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	attemptTotal, err := meter.Int64Counter("maps.attempt.total",
		metric.WithDescription("Network attempts issued, by service and classification"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating maps.attempt.total counter: %w", err)
	}

	retryTotal, err := meter.Int64Counter("maps.retry.total",
		metric.WithDescription("Retries scheduled after a retryable failure"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating maps.retry.total counter: %w", err)
	}

	requestDuration, err := meter.Float64Histogram("maps.request.duration",
		metric.WithDescription("End-to-end request duration including retries, in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating maps.request.duration histogram: %w", err)
	}

	return &Metrics{
		attemptTotal:    attemptTotal,
		retryTotal:      retryTotal,
		requestDuration: requestDuration,
	}, nil
}

// RecordAttempt counts one attempt with its classification.
func (m *Metrics) RecordAttempt(ctx context.Context, service, classification string) {
	if m == nil {
		return
	}
	m.attemptTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("classification", classification),
	))
}

// RecordRetry counts one scheduled retry.
func (m *Metrics) RecordRetry(ctx context.Context, service string) {
	if m == nil {
		return
	}
	m.retryTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("service", service),
	))
}

// RecordRequest times one completed request.
func (m *Metrics) RecordRequest(ctx context.Context, service string, d time.Duration, success bool) {
	if m == nil {
		return
	}
	m.requestDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("service", service),
		attribute.Bool("success", success),
	))
}
