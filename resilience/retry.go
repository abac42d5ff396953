package resilience

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// PermanentError marks a failure that must not be retried. The retry loop
// unwraps it and returns the cause immediately.
type PermanentError struct {
	Err error
}

// Error implements the error interface.
func (e *PermanentError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped cause.
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err so the retry loop treats it as non-retryable.
// A nil err returns nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err is marked non-retryable.
func IsPermanent(err error) bool {
	var pe *PermanentError
	return errors.As(err, &pe)
}

// ExhaustedError is returned when the retry budget is spent while the error
// remained transient. It carries the last observed cause so callers can
// distinguish "gave up after N transient failures" from "rejected outright".
type ExhaustedError struct {
	// Attempts is the number of attempts actually issued.
	Attempts int
	// Err is the last transient error observed.
	Err error
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry budget exhausted after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap returns the last transient cause.
func (e *ExhaustedError) Unwrap() error { return e.Err }

// Config configures retry behavior. One Config instance drives one retry
// loop invocation; it is never mutated by the loop.
type Config struct {
	// MaxAttempts is the maximum number of attempts (including the first).
	MaxAttempts int
	// MaxElapsedTime bounds the total time spent attempting and waiting.
	// Zero means no elapsed-time bound.
	MaxElapsedTime time.Duration
	// InitialBackoff is the delay before the second attempt.
	InitialBackoff time.Duration
	// MaxBackoff caps the delay between attempts.
	MaxBackoff time.Duration
	// BackoffFactor is the multiplier for exponential backoff.
	BackoffFactor float64
	// Jitter adds randomness to backoff (0.0 to 1.0).
	Jitter float64
	// OnRetry is called before each wait, with the attempt that just
	// failed, its error, and the upcoming delay.
	OnRetry func(attempt int, err error, backoff time.Duration)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    8,
		MaxElapsedTime: 2 * time.Minute,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
		BackoffFactor:  2.0,
		Jitter:         0.1,
	}
}

// Retry drives fn until it succeeds, returns a permanent error, or the
// budget is exhausted. The first attempt is issued immediately; subsequent
// attempts wait an exponentially increasing, optionally jittered delay.
// Context cancellation aborts the loop at the next wait boundary.
func Retry[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 8
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 500 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 30 * time.Second
	}
	if cfg.BackoffFactor <= 0 {
		cfg.BackoffFactor = 2.0
	}

	start := time.Now()

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		var pe *PermanentError
		if errors.As(err, &pe) {
			return zero, pe.Err
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return zero, err
		}
		lastErr = err

		if attempt == cfg.MaxAttempts {
			return zero, &ExhaustedError{Attempts: attempt, Err: lastErr}
		}

		backoff := calculateBackoff(attempt, cfg)
		if cfg.MaxElapsedTime > 0 && time.Since(start)+backoff > cfg.MaxElapsedTime {
			return zero, &ExhaustedError{Attempts: attempt, Err: lastErr}
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err, backoff)
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, &ExhaustedError{Attempts: cfg.MaxAttempts, Err: lastErr}
}

// calculateBackoff computes the delay after the given attempt:
// min(MaxBackoff, InitialBackoff * BackoffFactor^(attempt-1)), jittered.
func calculateBackoff(attempt int, cfg Config) time.Duration {
	backoff := float64(cfg.InitialBackoff) * math.Pow(cfg.BackoffFactor, float64(attempt-1))
	if backoff > float64(cfg.MaxBackoff) {
		backoff = float64(cfg.MaxBackoff)
	}

	if cfg.Jitter > 0 {
		jitterRange := backoff * cfg.Jitter
		backoff += (rand.Float64()*2 - 1) * jitterRange
	}

	if backoff < 0 {
		backoff = float64(cfg.InitialBackoff)
	}
	return time.Duration(backoff)
}
