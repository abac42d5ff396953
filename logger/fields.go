package logger

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldService   = "service"
	FieldRequestID = "request_id"
	FieldAttempt   = "attempt"
	FieldStatus    = "status"
	FieldHTTP      = "http_status"
	FieldBackoff   = "backoff_ms"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldURL       = "url"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	log.Info("request ok", logger.Fields("service", "geocoding", "attempt", 1))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
