package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeNotFound indicates a referenced record does not exist
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates invalid caller-supplied data
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeInvalidTransition indicates an illegal state-machine transition
	ErrorTypeInvalidTransition ErrorType = "INVALID_TRANSITION"

	// ErrorTypeStorageCorrupt indicates persisted state that failed to decode
	ErrorTypeStorageCorrupt ErrorType = "STORAGE_CORRUPT"

	// ErrorTypeExternal indicates an error from an external collaborator
	ErrorTypeExternal ErrorType = "EXTERNAL"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewInvalidTransitionError creates a new invalid transition error
func NewInvalidTransitionError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidTransition,
		Message: message,
	}
}

// NewStorageCorruptError creates a new storage corruption error
func NewStorageCorruptError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorageCorrupt,
		Message: message,
		Err:     err,
	}
}

// NewExternalError creates a new external service error
func NewExternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeExternal,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}
