package maps

// Status is the application-level status embedded in a service response
// body, distinct from the HTTP status code.
type Status string

// Status values shared by the service responses.
const (
	StatusOK                     Status = "OK"
	StatusInvalidRequest         Status = "INVALID_REQUEST"
	StatusMaxRouteLengthExceeded Status = "MAX_ROUTE_LENGTH_EXCEEDED"
	StatusMaxWaypointsExceeded   Status = "MAX_WAYPOINTS_EXCEEDED"
	StatusNotFound               Status = "NOT_FOUND"
	StatusOverDailyLimit         Status = "OVER_DAILY_LIMIT"
	StatusOverQueryLimit         Status = "OVER_QUERY_LIMIT"
	StatusRequestDenied          Status = "REQUEST_DENIED"
	StatusUnknownError           Status = "UNKNOWN_ERROR"
	StatusZeroResults            Status = "ZERO_RESULTS"
)

// Response is implemented by every decoded service response. ServiceStatus
// exposes the embedded status field and any error message so the executor
// can classify the attempt without knowing the service's schema.
type Response interface {
	ServiceStatus() (Status, string)
}
