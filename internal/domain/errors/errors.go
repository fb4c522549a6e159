// Package errors defines the application error taxonomy: validation errors,
// not-found conditions, moderation failures and external-call failures. All
// of them are recoverable; none is fatal to the orchestrator.
package errors

import (
	"net/http"

	"inkspot/internal/errors"
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
	// Authentication and moderation errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"This email is already registered",
		"",
	)

	ErrArtistPending = NewBaseError(
		http.StatusForbidden,
		"ARTIST_PENDING",
		"Your profile is awaiting admin approval",
		"",
	)

	ErrArtistRejected = NewBaseError(
		http.StatusForbidden,
		"ARTIST_REJECTED",
		"Your artist registration was declined",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// ErrSelfChat is returned when an account tries to open a chat with itself.
	ErrSelfChat = NewBaseError(
		http.StatusBadRequest,
		"SELF_CHAT",
		"You cannot start a chat with yourself",
		"",
	)

	// ErrEmptyContent is returned when a chat message trims to nothing.
	ErrEmptyContent = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CONTENT",
		"Message content must not be empty",
		"",
	)

	ErrDuplicateReview = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_REVIEW",
		"You have already reviewed this tattoo",
		"",
	)

	// External-call failures
	ErrGenerationFailed = NewBaseError(
		http.StatusBadGateway,
		"GENERATION_FAILED",
		"죄송합니다, 지금은 이미지를 생성할 수 없습니다. 나중에 다시 시도해주세요.",
		"",
	)

	ErrImageProcessing = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_PROCESSING_FAILED",
		"The uploaded image could not be processed",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Login required",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
