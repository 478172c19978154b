package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the remote catalog has no matching book.
var ErrNotFound = errors.New("book not found")

// NetworkError wraps a transport-level failure (connection refused, timeout,
// DNS). The remote call never reached a meaningful HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError indicates rejected credentials.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "invalid username or password"
	}
	return e.Message
}

// ConflictError indicates a registration with a username already taken.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message == "" {
		return "username already taken"
	}
	return e.Message
}

// ValidationError reports a client-side check that failed before any network
// call was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ServerError carries a non-2xx response that does not map to a more specific
// error. Message is taken from the response body when the server supplied one.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// apiError maps an HTTP status and server-supplied message onto the error
// taxonomy surfaced to the user.
func apiError(status int, message string) error {
	switch status {
	case 401, 403:
		return &AuthError{Message: message}
	case 404:
		return ErrNotFound
	case 409:
		return &ConflictError{Message: message}
	default:
		return &ServerError{Status: status, Message: message}
	}
}
