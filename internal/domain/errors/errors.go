package errors

import (
	"net/http"

	"quaidirect/internal/errors"
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
	// Drop-related errors
	ErrDropNotFound = NewBaseError(
		http.StatusNotFound,
		"DROP_NOT_FOUND",
		"drop not found",
		"",
	)

	ErrDropIDInvalid = NewBaseError(
		http.StatusBadRequest,
		"DROP_ID_INVALID",
		"dropId must be a valid UUID",
		"",
	)

	ErrDropIDMissing = NewBaseError(
		http.StatusBadRequest,
		"DROP_ID_MISSING",
		"dropId is required",
		"",
	)

	ErrDropCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"DROP_CREATION_FAILED",
		"failed to create drop",
		"",
	)

	ErrDropNotPublishable = NewBaseError(
		http.StatusConflict,
		"DROP_NOT_PUBLISHABLE",
		"drop is not in a publishable state",
		"",
	)

	// Fisherman-related errors
	ErrFishermanNotFound = NewBaseError(
		http.StatusNotFound,
		"FISHERMAN_NOT_FOUND",
		"fisherman not found",
		"",
	)

	// Follow-related errors
	ErrFollowAlreadyExists = NewBaseError(
		http.StatusConflict,
		"FOLLOW_ALREADY_EXISTS",
		"you are already following this target",
		"",
	)

	ErrFollowNotFound = NewBaseError(
		http.StatusNotFound,
		"FOLLOW_NOT_FOUND",
		"follow relation not found",
		"",
	)

	// Device-related errors
	ErrRegistrationNotFound = NewBaseError(
		http.StatusNotFound,
		"REGISTRATION_NOT_FOUND",
		"push registration not found",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"missing or invalid credentials",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired access token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Notification-related errors
	ErrFanoutFailed = NewBaseError(
		http.StatusInternalServerError,
		"FANOUT_FAILED",
		"failed to dispatch drop notifications",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
