package errors

import (
	stdErrors "errors"
	"net/http"

	"workspace-admin/pkg/backend"
)

// HTTPError is an error that carries the status to answer with.
type HTTPError struct {
	StatusCode int
	Message    string
	Errors     any
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// WithErrors attaches per-field validation errors.
func (e *HTTPError) WithErrors(errs any) *HTTPError {
	e.Errors = errs
	return e
}

// FromBackend converts an error from the remote API into an HTTPError.
// Client errors keep the remote status and message. Anything else becomes a
// 502 carrying fallback.
func FromBackend(err error, fallback string) *HTTPError {
	var httpErr *HTTPError
	if stdErrors.As(err, &httpErr) {
		return httpErr
	}

	if stdErrors.Is(err, backend.ErrUnauthorized) {
		return NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	var apiErr *backend.APIError
	if stdErrors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		out := NewHTTPError(apiErr.StatusCode, backend.Message(err, fallback))
		if len(apiErr.Errors) > 0 {
			out.Errors = apiErr.Errors
		}
		return out
	}

	return NewHTTPError(http.StatusBadGateway, fallback)
}
