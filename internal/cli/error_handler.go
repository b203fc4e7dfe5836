package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"daybelt/internal/errors"
	"daybelt/internal/logging"
	"daybelt/internal/services"
	"daybelt/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	return fmt.Errorf("failed to %s: %s", operation, eh.message(err))
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if _, ok := errors.AsAppError(err); ok || validation.IsValidationError(err) {
		return stderrors.New(eh.message(err))
	}
	return err
}

// SoftFail reports a failed save as a warning on w and swallows it. Any other
// error is returned through Handle.
func (eh *ErrorHandler) SoftFail(w io.Writer, operation string, err error) error {
	if err == nil {
		return nil
	}
	var persistErr *services.PersistError
	if stderrors.As(err, &persistErr) {
		logging.Default().Warn("progress not saved", "date", persistErr.Date, "err", persistErr.Err)
		fmt.Fprintf(w, "Warning: your change is shown but was not saved: %s\n", errors.GetUserMessage(persistErr.Err))
		return nil
	}
	return eh.Handle(operation, err)
}

// Warn prints a non-fatal problem on w
func (eh *ErrorHandler) Warn(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "Warning: %s\n", eh.message(err))
}

func (eh *ErrorHandler) message(err error) string {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.GetUserFriendlyMessage()
	}
	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err)
	}
	return err.Error()
}

// IsPersistError checks if an error is a failed save
func (eh *ErrorHandler) IsPersistError(err error) bool {
	var persistErr *services.PersistError
	return stderrors.As(err, &persistErr)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
