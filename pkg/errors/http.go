// Package errors holds the HTTP error type server handlers map domain
// errors to.
package errors

import "net/http"

// HTTPError is an error with the status code and client-facing message it
// should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest      = NewHTTPError(http.StatusBadRequest, "Bad Request")
	ErrUnauthorized    = NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	ErrNotFound        = NewHTTPError(http.StatusNotFound, "Not Found")
	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "Too Many Requests")
)
