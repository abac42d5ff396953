package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	callCount := 0

	result, err := Retry(context.Background(), DefaultConfig(), func() (string, error) {
		callCount++
		return "success", nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result != "success" {
		t.Errorf("expected 'success', got %s", result)
	}
	if callCount != 1 {
		t.Errorf("expected 1 call, got %d", callCount)
	}
}

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	cfg := Config{
		MaxAttempts:    5,
		InitialBackoff: time.Millisecond,
		BackoffFactor:  2.0,
	}
	callCount := 0

	result, err := Retry(context.Background(), cfg, func() (string, error) {
		callCount++
		if callCount < 4 {
			return "", errors.New("temporary error")
		}
		return "success", nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result != "success" {
		t.Errorf("expected 'success', got %s", result)
	}
	if callCount != 4 {
		t.Errorf("expected 4 calls, got %d", callCount)
	}
}

func TestRetry_PermanentErrorStopsImmediately(t *testing.T) {
	cfg := Config{
		MaxAttempts:    5,
		InitialBackoff: time.Millisecond,
	}
	cause := errors.New("bad request")
	callCount := 0

	_, err := Retry(context.Background(), cfg, func() (string, error) {
		callCount++
		return "", Permanent(cause)
	})

	if !errors.Is(err, cause) {
		t.Errorf("expected cause %v, got %v", cause, err)
	}
	if IsPermanent(err) {
		t.Error("permanent wrapper should be unwrapped before returning")
	}
	if callCount != 1 {
		t.Errorf("expected 1 call, got %d", callCount)
	}
}

func TestRetry_ExhaustionCarriesLastCause(t *testing.T) {
	cfg := Config{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
	}
	cause := errors.New("still down")
	callCount := 0

	_, err := Retry(context.Background(), cfg, func() (string, error) {
		callCount++
		return "", cause
	})

	var ee *ExhaustedError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExhaustedError, got %v", err)
	}
	if ee.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", ee.Attempts)
	}
	if !errors.Is(err, cause) {
		t.Errorf("exhaustion should wrap last cause, got %v", ee.Err)
	}
	if callCount != 3 {
		t.Errorf("expected exactly 3 calls, got %d", callCount)
	}
}

func TestRetry_MaxElapsedTimeBoundsLoop(t *testing.T) {
	cfg := Config{
		MaxAttempts:    1000,
		MaxElapsedTime: 50 * time.Millisecond,
		InitialBackoff: 20 * time.Millisecond,
		BackoffFactor:  2.0,
	}

	start := time.Now()
	_, err := Retry(context.Background(), cfg, func() (string, error) {
		return "", errors.New("down")
	})
	elapsed := time.Since(start)

	var ee *ExhaustedError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExhaustedError, got %v", err)
	}
	if elapsed > 500*time.Millisecond {
		t.Errorf("loop should terminate within the elapsed budget, took %v", elapsed)
	}
}

func TestRetry_BackoffMonotonic(t *testing.T) {
	cfg := Config{
		MaxAttempts:    6,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     8 * time.Millisecond,
		BackoffFactor:  2.0,
	}

	var delays []time.Duration
	cfg.OnRetry = func(attempt int, err error, backoff time.Duration) {
		delays = append(delays, backoff)
	}

	_, _ = Retry(context.Background(), cfg, func() (string, error) {
		return "", errors.New("down")
	})

	if len(delays) != 5 {
		t.Fatalf("expected 5 waits, got %d", len(delays))
	}
	for i := 1; i < len(delays); i++ {
		if delays[i] < delays[i-1] {
			t.Errorf("delays must be non-decreasing: %v", delays)
		}
	}
	for _, d := range delays {
		if d > cfg.MaxBackoff {
			t.Errorf("delay %v exceeds max backoff %v", d, cfg.MaxBackoff)
		}
	}
}

func TestRetry_ContextCancelDuringBackoff(t *testing.T) {
	cfg := Config{
		MaxAttempts:    10,
		InitialBackoff: time.Second,
	}
	ctx, cancel := context.WithCancel(context.Background())
	callCount := 0

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := Retry(ctx, cfg, func() (string, error) {
		callCount++
		return "", errors.New("down")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if callCount != 1 {
		t.Errorf("expected 1 call before cancellation, got %d", callCount)
	}
}

func TestPermanent_NilStaysNil(t *testing.T) {
	if Permanent(nil) != nil {
		t.Error("Permanent(nil) should be nil")
	}
}
