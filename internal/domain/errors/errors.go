package errors

import (
	"net/http"

	"boardroom/internal/errors"
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_REGISTERED",
		"Email is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Could not validate credentials",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Workspace-related errors
	ErrWorkspaceNotFound = NewBaseError(
		http.StatusNotFound,
		"WORKSPACE_NOT_FOUND",
		"Workspace not found",
		"",
	)

	// Node-related errors
	ErrNodeNotFound = NewBaseError(
		http.StatusNotFound,
		"NODE_NOT_FOUND",
		"Node not found",
		"",
	)

	ErrInvalidAdvisorModel = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MODEL_ID",
		"Invalid model ID, choose a value from 1 to 6",
		"",
	)

	// Message-related errors
	ErrMessageNotFound = NewBaseError(
		http.StatusNotFound,
		"MESSAGE_NOT_FOUND",
		"Message not found",
		"",
	)

	ErrInvalidSender = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SENDER",
		"Sender must be 'AI' or 'You'",
		"",
	)

	// Advisor / summary errors
	ErrGroqNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"GROQ_NOT_CONFIGURED",
		"GROQ_API_KEY is not configured",
		"",
	)

	ErrGroqRequestFailed = NewBaseError(
		http.StatusBadGateway,
		"GROQ_REQUEST_FAILED",
		"Failed to call the Groq API",
		"",
	)

	ErrWorkspaceEmpty = NewBaseError(
		http.StatusNotFound,
		"WORKSPACE_EMPTY",
		"No nodes with messages found in this workspace",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database failure as an AppError
// while keeping the original error as details.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)

	return errors.Wrap(base, message)
}
