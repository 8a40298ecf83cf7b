package client

import (
	"errors"
	"net/http"
)

// Kinds of failure. An *APIError matches exactly one of them with errors.Is.
var (
	ErrAuthentication = errors.New("authentication required")
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrNetwork        = errors.New("network unavailable")
	ErrServer         = errors.New("server error")
)

// APIError describes a failed call. Kind is one of the package sentinels and
// Status is zero when no response was received.
type APIError struct {
	Kind    error
	Status  int
	Message string
	Err     error
}

// Error returns the message only, so it can be shown to a user as is.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes Kind and, when set, the underlying cause.
func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Invalid reports a failure found before any request was sent.
func Invalid(err error) *APIError {
	return &APIError{Kind: ErrValidation, Message: err.Error(), Err: err}
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return ErrAuthentication
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 400 && status < 500:
		return ErrValidation
	default:
		return ErrServer
	}
}
