package backend

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is wrapped by TransportError when a 2xx body lacks a
// required field.
var ErrMalformedResponse = errors.New("malformed response")

// APIError is a non-2xx response from the backend.
type APIError struct {
	Op      string
	Status  int
	Message string // optional, from the body's "message" field
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s: status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("backend %s: status %d", e.Op, e.Status)
}

// TransportError reports a request that failed before a usable response was
// received, including undecodable bodies.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("backend %s: %v", e.Op, e.Err) }

func (e *TransportError) Unwrap() error { return e.Err }

// ServerMessage returns the backend's message when err is an APIError that
// carries one.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
