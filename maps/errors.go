package maps

import (
	"errors"
	"fmt"
)

// ErrorCode classifies executor errors.
type ErrorCode int

const (
	// ErrCodeQueryNotBuilt indicates execution was attempted before the
	// request's query string was built. A caller bug, never retried.
	ErrCodeQueryNotBuilt ErrorCode = iota
	// ErrCodeValidation indicates invalid request parameters.
	ErrCodeValidation
	// ErrCodeTransport indicates the HTTP request could not connect or
	// complete.
	ErrCodeTransport
	// ErrCodeSchema indicates a 2xx body that did not decode as the
	// expected schema.
	ErrCodeSchema
	// ErrCodeHTTP indicates a non-2xx HTTP status.
	ErrCodeHTTP
	// ErrCodeService indicates the service reported a domain-level failure
	// in the response body.
	ErrCodeService
	// ErrCodeExhausted indicates the retry budget was spent while the
	// error remained retryable.
	ErrCodeExhausted
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeQueryNotBuilt:
		return "query_not_built"
	case ErrCodeValidation:
		return "validation"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeSchema:
		return "schema"
	case ErrCodeHTTP:
		return "http"
	case ErrCodeService:
		return "service"
	case ErrCodeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Error is the one error type the executor returns. Service tags the
// vertical that produced it, so one executor can serve every service while
// callers still see a per-service vocabulary.
type Error struct {
	// Service names the vertical, e.g. "directions".
	Service string
	// Code classifies the error.
	Code ErrorCode
	// StatusCode is the HTTP status code (0 when no response arrived).
	StatusCode int
	// Status is the application-level status, for service errors.
	Status Status
	// Message describes the error; for service errors it carries the
	// error_message field when the service supplied one.
	Message string
	// Retryable indicates whether the attempt was classified retryable.
	Retryable bool
	// Attempts is how many attempts were issued, for exhaustion errors.
	Attempts int
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Code == ErrCodeService:
		if e.Message != "" {
			return fmt.Sprintf("maps: %s: service error %s: %s", e.Service, e.Status, e.Message)
		}
		return fmt.Sprintf("maps: %s: service error %s", e.Service, e.Status)
	case e.Code == ErrCodeExhausted:
		return fmt.Sprintf("maps: %s: retry budget exhausted after %d attempts: %v", e.Service, e.Attempts, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("maps: %s: %s (HTTP %d): %s", e.Service, e.Code, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("maps: %s: %s: %s", e.Service, e.Code, e.Message)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// NewQueryNotBuiltError creates the precondition error for an unbuilt query.
func NewQueryNotBuiltError(service string) *Error {
	return &Error{
		Service: service,
		Code:    ErrCodeQueryNotBuilt,
		Message: "the query string must be built before the request may be executed",
	}
}

// NewValidationError creates a request validation error.
func NewValidationError(service, msg string) *Error {
	return &Error{
		Service: service,
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// NewTransportError creates a transport-level error.
func NewTransportError(service string, err error) *Error {
	return &Error{
		Service:   service,
		Code:      ErrCodeTransport,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewSchemaError creates a decode error for a malformed 2xx body.
func NewSchemaError(service string, err error) *Error {
	return &Error{
		Service: service,
		Code:    ErrCodeSchema,
		Message: err.Error(),
		Err:     err,
	}
}

// NewHTTPError creates an error for a non-2xx HTTP status. 5xx and 429 are
// retryable, everything else is not.
func NewHTTPError(service string, statusCode int) *Error {
	return &Error{
		Service:    service,
		Code:       ErrCodeHTTP,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Retryable:  statusCode >= 500 || statusCode == 429,
	}
}

// NewServiceError creates an error for a domain-level failure reported in
// the body. Only the generic "UNKNOWN_ERROR" status is retryable.
func NewServiceError(service string, status Status, message string) *Error {
	return &Error{
		Service:   service,
		Code:      ErrCodeService,
		Status:    status,
		Message:   message,
		Retryable: status == StatusUnknownError,
	}
}

// NewExhaustedError wraps the last retryable cause once the retry budget
// is spent.
func NewExhaustedError(service string, attempts int, last error) *Error {
	return &Error{
		Service:  service,
		Code:     ErrCodeExhausted,
		Attempts: attempts,
		Message:  "retry budget exhausted",
		Err:      last,
	}
}

// IsQueryNotBuilt checks for the unbuilt-query precondition error.
func IsQueryNotBuilt(err error) bool { return hasCode(err, ErrCodeQueryNotBuilt) }

// IsValidation checks for a request validation error.
func IsValidation(err error) bool { return hasCode(err, ErrCodeValidation) }

// IsTransport checks for a transport-level error.
func IsTransport(err error) bool { return hasCode(err, ErrCodeTransport) }

// IsSchema checks for a malformed-body error.
func IsSchema(err error) bool { return hasCode(err, ErrCodeSchema) }

// IsService checks for a domain-level service error.
func IsService(err error) bool { return hasCode(err, ErrCodeService) }

// IsExhausted checks for a spent retry budget.
func IsExhausted(err error) bool { return hasCode(err, ErrCodeExhausted) }

// IsRetryable checks whether the classified cause was retryable.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
