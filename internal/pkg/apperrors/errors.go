package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
)

// User errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrTutorNotFound       = errors.New("tutor not found")
	ErrHandleAlreadyExists = errors.New("handle already exists")
	ErrInvalidHandle       = errors.New("invalid handle format")
)

// Content errors
var (
	ErrBoxNotFound    = errors.New("box not found")
	ErrLessonNotFound = errors.New("lesson not found")
)

// Social errors
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrReminderNotFound     = errors.New("reminder not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrSessionNotFound      = errors.New("tutor session not found")
)

// Wallet errors
var (
	ErrInsufficientFunds = errors.New("insufficient points balance")
	ErrInvalidAmount     = errors.New("amount must be a positive integer")
)

// Storage errors. ErrStorageCorrupt never escapes the store layer; a corrupt
// collection value is replaced with its fixture default.
var (
	ErrStorageCorrupt = errors.New("stored value is corrupt")
	ErrBackupInvalid  = errors.New("backup payload is not valid JSON")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a new custom error for rejected input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
