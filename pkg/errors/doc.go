// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Fetch failures are classified with one of four codes: ErrCodeTimeout,
// ErrCodeNetwork, ErrCodeHTTPStatus (with the status in Context["status"])
// and ErrCodeJSONParse.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeHTTPStatus,
//	    "request failed",
//	    nil,
//	    map[string]any{
//	        "status": resp.StatusCode,
//	        "url":    url,
//	    },
//	)
//
//	if code, ok := errors.HTTPStatus(err); ok && code == http.StatusNotFound {
//	    // ...
//	}
package errors
