package cli

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "daybelt/internal/errors"
	"daybelt/internal/services"
	"daybelt/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	rangeErr := validation.NewValidationError()
	rangeErr.AddInvalidRangeError("task number", 9, "9 is not between 1 and 3")

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "validation collection",
			operation: "toggle tasks",
			err:       rangeErr,
			expected:  "failed to toggle tasks: task number has invalid range: 9 is not between 1 and 3",
		},
		{
			name:      "validation wrapped in app error",
			operation: "toggle tasks",
			err:       apperrors.NewValidationError("invalid task number", rangeErr),
			expected:  "failed to toggle tasks: task number has invalid range: 9 is not between 1 and 3",
		},
		{
			name:      "storage error",
			operation: "export csv",
			err:       apperrors.NewStorageError("write", stderrors.New("disk full")),
			expected:  "failed to export csv: Progress could not be saved or read. Your checklist is unchanged on screen.",
		},
		{
			name:      "plain error",
			operation: "load checklist",
			err:       stderrors.New("boom"),
			expected:  "failed to load checklist: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, eh.Handle(tt.operation, tt.err).Error())
		})
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	plain := stderrors.New("plain")
	assert.Same(t, plain, eh.HandleSimple(plain))

	err := eh.HandleSimple(apperrors.NewNotFoundError("snapshot", "2024-05-01"))
	assert.NotContains(t, err.Error(), "not_found:")
}

func TestErrorHandler_SoftFail(t *testing.T) {
	eh := NewErrorHandler()

	t.Run("nil", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, eh.SoftFail(&buf, "toggle tasks", nil))
		assert.Empty(t, buf.String())
	})

	t.Run("persist error becomes a warning", func(t *testing.T) {
		var buf bytes.Buffer
		err := &services.PersistError{Date: "2024-05-01", Err: errReadOnly}
		require.NoError(t, eh.SoftFail(&buf, "toggle tasks", err))
		assert.Contains(t, buf.String(), "Warning: your change is shown but was not saved")
	})

	t.Run("other errors pass through", func(t *testing.T) {
		var buf bytes.Buffer
		err := eh.SoftFail(&buf, "toggle tasks", stderrors.New("boom"))
		require.Error(t, err)
		assert.Equal(t, "failed to toggle tasks: boom", err.Error())
		assert.Empty(t, buf.String())
	})
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	persistErr := &services.PersistError{Date: "2024-05-01", Err: errReadOnly}
	assert.True(t, eh.IsPersistError(persistErr))
	assert.False(t, eh.IsPersistError(errReadOnly))

	assert.True(t, eh.IsValidationError(validation.NewValidationError()))
	assert.True(t, eh.IsValidationError(apperrors.NewValidationError("bad", nil)))
	assert.True(t, eh.IsNotFoundError(apperrors.NewNotFoundError("snapshot", "x")))
	assert.True(t, eh.IsStorageError(persistErr))
	assert.Equal(t, "UNKNOWN_ERROR", eh.GetErrorCode(stderrors.New("x")))
}
