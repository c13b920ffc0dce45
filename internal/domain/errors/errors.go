// Package errors defines application-level errors with HTTP mappings used by
// the delivery layer.
package errors

import (
	"net/http"

	"gather/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrSessionNotLoaded = NewBaseError(
		http.StatusConflict,
		"SESSION_NOT_LOADED",
		"session data has not been loaded yet",
		"",
	)

	ErrScheduledActivityNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHEDULED_ACTIVITY_NOT_FOUND",
		"scheduled activity not found",
		"",
	)

	ErrInviteNotFound = NewBaseError(
		http.StatusNotFound,
		"INVITE_NOT_FOUND",
		"pending invite not found",
		"",
	)

	ErrInvalidInviteStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INVITE_STATUS",
		"invite status must be Accepted or Declined",
		"",
	)

	ErrRemoteUnavailable = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_UNAVAILABLE",
		"the remote data service did not complete the request",
		"",
	)
)
