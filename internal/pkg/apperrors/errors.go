package apperrors

import "errors"

// Transport-level errors shared by the outbound adapters.
var (
	// ErrNotFound is returned when a remote resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when a value handed to an adapter is malformed.
	ErrInvalidInput = errors.New("invalid input provided")

	// ErrUnauthorized is returned when a remote service rejects our credentials.
	ErrUnauthorized = errors.New("unauthorized access")

	// ErrExternalServiceFailure is returned when an interaction with an external service fails.
	ErrExternalServiceFailure = errors.New("external service interaction failed")

	// ErrConflict is returned when a remote service refuses to create something that already exists.
	ErrConflict = errors.New("resource already exists")

	// ErrTimeout is returned when an operation times out.
	ErrTimeout = errors.New("operation timed out")

	// ErrInternal is returned for unexpected internal system errors.
	ErrInternal = errors.New("internal system error")
)
