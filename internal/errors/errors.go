package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewStorageError creates a new storage error. Permission failures reported
// by the filesystem are promoted to permission errors.
func NewStorageError(operation string, cause error) *AppError {
	if errors.Is(cause, fs.ErrPermission) {
		return NewPermissionError(operation, "snapshot storage").withCause(cause)
	}
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewCorruptSnapshotError reports a snapshot that exists but cannot be used
func NewCorruptSnapshotError(date string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeCorruptSnapshot,
		Message: fmt.Sprintf("snapshot for %s is unreadable", date),
		Code:    "CORRUPT_SNAPSHOT",
		Cause:   cause,
		Context: map[string]interface{}{
			"date": date,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewPermissionError creates a new permission error
func NewPermissionError(operation string, resource string) *AppError {
	return &AppError{
		Type:    ErrorTypePermission,
		Message: fmt.Sprintf("permission denied for %s on %s", operation, resource),
		Code:    "PERMISSION_DENIED",
		Context: map[string]interface{}{
			"operation": operation,
			"resource":  resource,
		},
	}
}

// NewPlanError reports a day plan that could not be loaded
func NewPlanError(path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypePlan,
		Message: fmt.Sprintf("cannot load plan %s", path),
		Code:    "PLAN_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"path": path,
		},
	}
}

func (e *AppError) withCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsNotFound reports whether err is a not found AppError
func IsNotFound(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypePermission:
			return appErr.Message
		case ErrorTypeStorage:
			return "Progress could not be saved or read. Your checklist is unchanged on screen."
		case ErrorTypeCorruptSnapshot:
			return appErr.Message + "; starting from a fresh checklist."
		case ErrorTypePlan:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return false // user errors
		default:
			return true
		}
	}
	return true
}
