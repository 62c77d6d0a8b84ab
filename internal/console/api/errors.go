package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned on 401 responses (bad or missing credentials).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned on 404 responses (stale or unknown id).
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned on 400/422 responses (rejected payload).
	ErrValidation = errors.New("validation error")

	// ErrUnavailable covers network failures and any other non-2xx response.
	ErrUnavailable = errors.New("server unavailable")
)

// APIError carries the raw HTTP status and server-provided message of a
// failed request. It wraps one of the sentinel errors above, so callers
// can keep matching with errors.Is.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// newStatusError maps an HTTP status to the sentinel taxonomy.
func newStatusError(status int, message string) error {
	kind := ErrUnavailable
	switch status {
	case 401:
		kind = ErrUnauthorized
	case 404:
		kind = ErrNotFound
	case 400, 422:
		kind = ErrValidation
	}
	return &APIError{Status: status, Message: message, kind: kind}
}
