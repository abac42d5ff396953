// Package resilience implements the retry loop driving every request to
// the remote geospatial services.
//
// Failures fall into two cases: transient faults worth another attempt, and
// permanent faults that will not change on retry. An attempt function marks
// the latter by wrapping them with Permanent; everything else is retried
// under exponential backoff until the attempt or elapsed-time budget runs
// out, at which point the last transient cause is surfaced inside an
// ExhaustedError.
//
//	result, err := resilience.Retry(ctx, cfg, func() (*Response, error) {
//	    resp, err := attempt()
//	    if err != nil && !recoverable(err) {
//	        return nil, resilience.Permanent(err)
//	    }
//	    return resp, err
//	})
package resilience
