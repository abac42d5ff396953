package maps

import "errors"

// Outcome captures everything one attempt produced: the transport result,
// the HTTP status if a response arrived, and the decoded application status
// if the body parsed. Produced and consumed within a single attempt.
type Outcome struct {
	// TransportErr is non-nil when the request could not connect or
	// complete.
	TransportErr error
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// DecodeErr is non-nil when a 2xx body failed to decode.
	DecodeErr error
	// Status is the application-level status from the decoded body.
	Status Status
	// ErrorMessage carries the service's error_message field, if any.
	ErrorMessage string
}

// Kind is the classification of one attempt.
type Kind int

const (
	// Success: the decoded body may be returned to the caller.
	Success Kind = iota
	// Retryable: transient fault, worth another attempt.
	Retryable
	// Permanent: retrying will not change the result.
	Permanent
)

// String returns the classification name.
func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Retryable:
		return "retryable"
	case Permanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// Classification is the classifier's verdict on one attempt. Err is nil
// exactly when Kind is Success.
type Classification struct {
	Kind Kind
	Err  *Error
}

// errMissingStatus reports a 2xx body that decoded but carried no
// recognizable status value.
var errMissingStatus = errors.New("response body carries no recognized status value")

// Classify maps one attempt outcome to a classification. It is a pure
// function: the same outcome always yields the same classification.
//
// Only faults attributable to transient server or network conditions are
// retryable: transport failures, HTTP 5xx, HTTP 429, and the service's
// generic "UNKNOWN_ERROR" status. Malformed payloads, quota denials, and
// invalid-argument responses will not change on retry and fail fast.
func Classify(service string, out Outcome) Classification {
	if out.TransportErr != nil {
		return Classification{Kind: Retryable, Err: NewTransportError(service, out.TransportErr)}
	}

	if out.StatusCode >= 200 && out.StatusCode < 300 {
		switch {
		case out.DecodeErr != nil:
			return Classification{Kind: Permanent, Err: NewSchemaError(service, out.DecodeErr)}
		case out.Status == StatusOK:
			return Classification{Kind: Success}
		case out.Status == StatusUnknownError:
			return Classification{Kind: Retryable, Err: NewServiceError(service, out.Status, out.ErrorMessage)}
		case out.Status == "":
			return Classification{Kind: Permanent, Err: NewSchemaError(service, errMissingStatus)}
		default:
			return Classification{Kind: Permanent, Err: NewServiceError(service, out.Status, out.ErrorMessage)}
		}
	}

	if out.StatusCode >= 500 || out.StatusCode == 429 {
		return Classification{Kind: Retryable, Err: NewHTTPError(service, out.StatusCode)}
	}
	return Classification{Kind: Permanent, Err: NewHTTPError(service, out.StatusCode)}
}
