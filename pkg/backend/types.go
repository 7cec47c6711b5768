package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized is returned when the remote API answers 401. The registered
// unauthorized hooks have already run by the time a caller sees it.
var ErrUnauthorized = errors.New("backend: unauthorized")

// APIError is a non-2xx answer from the remote API.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string]any
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend API error %d", e.StatusCode)
	}
	return fmt.Sprintf("backend API error %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrUnauthorized) match a 401 APIError.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// UnauthorizedHook runs on every 401. ctx is the context of the failed call.
type UnauthorizedHook func(ctx context.Context)

// errorBody is the error payload of the remote API.
type errorBody struct {
	Message string         `json:"message"`
	Error   string         `json:"error"`
	Errors  map[string]any `json:"errors"`
}

// envelope is the success payload. Some endpoints wrap in data, some don't.
type envelope struct {
	Data json.RawMessage `json:"data"`
}
