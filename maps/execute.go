package maps

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/okutan/mapkit/logger"
	"github.com/okutan/mapkit/observability"
	"github.com/okutan/mapkit/ratelimit"
	"github.com/okutan/mapkit/resilience"
)

// Request is one executable service request. The service package builds
// the query string; execution is only permitted once Query is non-empty.
type Request struct {
	// Service tags the vertical for errors and diagnostics.
	Service string
	// URL is the full endpoint URL, without the query string.
	URL string
	// Query is the built, URL-encoded query string. Empty means the query
	// was never built, which is a caller bug, not a network condition.
	Query string
	// Apis lists the quota buckets this request consumes on every attempt.
	Apis []ratelimit.Api
}

// Execute runs one request through admission control, the transport, the
// classifier, and the retry loop, until it resolves. It returns the
// decoded body or a single *Error carrying the classified cause; context
// errors are returned as-is.
//
// The admission gate is consulted before every attempt, not only the
// first. Attempts of one call never overlap.
func Execute[T any, PT interface {
	Response
	*T
}](ctx context.Context, c *Client, req Request) (*T, error) {
	if req.Query == "" {
		return nil, NewQueryNotBuiltError(req.Service)
	}

	requestID := uuid.NewString()
	log := c.log.WithComponent("executor").WithService(req.Service).WithRequestID(requestID)

	ctx, span := observability.StartSpan(ctx, observability.SpanRequest,
		trace.WithAttributes(
			attribute.String(observability.AttrService, req.Service),
			attribute.String(observability.AttrRequestID, requestID),
		))
	defer span.End()

	url := req.URL + "?" + req.Query
	start := time.Now()
	attempt := 0

	cfg := c.retry
	cfg.OnRetry = func(n int, err error, backoff time.Duration) {
		c.metrics.RecordRetry(ctx, req.Service)
		log.Debug("backing off before retry", logger.Fields(
			logger.FieldAttempt, n,
			logger.FieldBackoff, backoff.Milliseconds(),
		))
	}

	body, err := resilience.Retry(ctx, cfg, func() (*T, error) {
		attempt++
		span.AddEvent("attempt", trace.WithAttributes(
			attribute.Int(observability.AttrAttempt, attempt),
		))

		if err := c.gate.Wait(ctx, req.Apis...); err != nil {
			return nil, err
		}

		typed, out := attemptOnce[T, PT](ctx, c.httpClient, url)
		cl := Classify(req.Service, out)
		c.metrics.RecordAttempt(ctx, req.Service, cl.Kind.String())

		switch cl.Kind {
		case Success:
			log.Info("request succeeded", logger.Fields(
				logger.FieldAttempt, attempt,
				logger.FieldHTTP, out.StatusCode,
				logger.FieldDuration, time.Since(start).Milliseconds(),
			))
			return typed, nil
		case Retryable:
			log.Warn("request failed, will retry", logger.Fields(
				logger.FieldAttempt, attempt,
				logger.FieldHTTP, out.StatusCode,
				logger.FieldError, cl.Err.Error(),
			))
			return nil, cl.Err
		default:
			log.Error("request failed permanently", logger.Fields(
				logger.FieldAttempt, attempt,
				logger.FieldHTTP, out.StatusCode,
				logger.FieldError, cl.Err.Error(),
			))
			return nil, resilience.Permanent(cl.Err)
		}
	})

	c.metrics.RecordRequest(ctx, req.Service, time.Since(start), err == nil)

	if err != nil {
		span.RecordError(err)

		var ee *resilience.ExhaustedError
		if errors.As(err, &ee) {
			log.Error("retry budget exhausted", logger.Fields(
				logger.FieldAttempt, ee.Attempts,
				logger.FieldError, ee.Err.Error(),
			))
			return nil, NewExhaustedError(req.Service, ee.Attempts, ee.Err)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int(observability.AttrAttempt, attempt))
	return body, nil
}

// attemptOnce performs one network attempt and reduces it to an Outcome.
// On a 2xx response it decodes the body into T and probes the decoded
// value for its application status.
func attemptOnce[T any, PT interface {
	Response
	*T
}](ctx context.Context, hc *http.Client, url string) (*T, Outcome) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, Outcome{TransportErr: err}
	}

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, Outcome{TransportErr: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Outcome{TransportErr: err}
	}

	out := Outcome{StatusCode: resp.StatusCode}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, out
	}

	typed := new(T)
	if err := json.Unmarshal(body, typed); err != nil {
		out.DecodeErr = err
		return nil, out
	}
	out.Status, out.ErrorMessage = PT(typed).ServiceStatus()
	return typed, out
}
