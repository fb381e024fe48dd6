// Package errors defines the application error taxonomy shared by the
// delivery and usecase layers.
package errors

import (
	"net/http"

	"noticetrack/internal/errors"
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
	// Input errors, rejected before any I/O
	ErrInvalidAddress = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ADDRESS",
		"Invalid wallet address",
		"",
	)

	ErrInvalidEventType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EVENT_TYPE",
		"Unknown activity event type",
		"",
	)

	// Transient upstream errors, retried on the next poll cycle
	ErrChainUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CHAIN_UNAVAILABLE",
		"Chain read failed",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"Record store unreachable",
		"",
	)

	// Record-store errors
	ErrNoticeNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTICE_NOT_FOUND",
		"Notice not found",
		"",
	)

	ErrCaseNotFound = NewBaseError(
		http.StatusNotFound,
		"CASE_NOT_FOUND",
		"Case not found",
		"",
	)

	ErrNoticeAlreadyExists = NewBaseError(
		http.StatusConflict,
		"NOTICE_ALREADY_EXISTS",
		"A notice with this token id is already recorded",
		"",
	)

	ErrNoticeCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTICE_CREATION_FAILED",
		"Failed to record notice",
		"",
	)

	ErrActivityLogFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACTIVITY_LOG_FAILED",
		"Failed to record activity event",
		"",
	)

	// Losing a view event is tolerable; a lost acknowledgment is not,
	// so this error is surfaced to the caller for an explicit retry.
	ErrAcknowledgmentFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACKNOWLEDGMENT_FAILED",
		"Failed to record acknowledgment",
		"",
	)

	// Authentication errors
	ErrChallengeNotFound = NewBaseError(
		http.StatusUnauthorized,
		"CHALLENGE_NOT_FOUND",
		"Unknown or expired authentication challenge",
		"",
	)

	ErrInvalidSignature = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SIGNATURE",
		"Challenge signature rejected",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired session token",
		"",
	)

	ErrWalletMismatch = NewBaseError(
		http.StatusForbidden,
		"WALLET_MISMATCH",
		"Session wallet does not match the requested wallet",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error as a generic
// internal AppError while keeping the cause in the details.
func NewDatabaseExecuteError(cause error, message string) error {
	return errors.Wrap(NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		cause.Error(),
	), message)
}
