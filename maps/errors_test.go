package maps

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Messages(t *testing.T) {
	err := NewServiceError("geocoding", StatusRequestDenied, "key expired")
	if !strings.Contains(err.Error(), "REQUEST_DENIED") || !strings.Contains(err.Error(), "key expired") {
		t.Errorf("unexpected message: %s", err.Error())
	}

	err = NewServiceError("geocoding", StatusZeroResults, "")
	if !strings.Contains(err.Error(), "ZERO_RESULTS") {
		t.Errorf("unexpected message: %s", err.Error())
	}

	err = NewHTTPError("roads", 502)
	if !strings.Contains(err.Error(), "HTTP 502") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestErrorHelpers(t *testing.T) {
	cause := errors.New("eof")
	wrapped := fmt.Errorf("request: %w", NewSchemaError("timezone", cause))

	if !IsSchema(wrapped) {
		t.Error("IsSchema should see through wrapping")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("Unwrap chain should reach the cause")
	}
	if IsTransport(wrapped) {
		t.Error("IsTransport should not match a schema error")
	}
}

func TestNewHTTPError_RetryableSet(t *testing.T) {
	if !NewHTTPError("directions", 500).Retryable {
		t.Error("500 must be retryable")
	}
	if !NewHTTPError("directions", 429).Retryable {
		t.Error("429 must be retryable")
	}
	if NewHTTPError("directions", 400).Retryable {
		t.Error("400 must not be retryable")
	}
}

func TestNewExhaustedError_CarriesCause(t *testing.T) {
	last := NewHTTPError("elevation", 503)
	err := NewExhaustedError("elevation", 5, last)

	if !IsExhausted(err) {
		t.Error("expected exhausted code")
	}
	if err.Attempts != 5 {
		t.Errorf("expected 5 attempts, got %d", err.Attempts)
	}

	var inner *Error
	if !errors.As(err.Err, &inner) || inner.StatusCode != 503 {
		t.Errorf("expected wrapped 503 cause, got %v", err.Err)
	}
}
