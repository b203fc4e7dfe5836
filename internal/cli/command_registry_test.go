package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybelt/internal/errors"
)

func TestNewCommandRegistry(t *testing.T) {
	h := setupTestApp(t, clockAt(10, 25))

	registry := NewCommandRegistry(h.app)
	assert.Equal(t, []string{
		"check", "done-all", "export", "history", "now",
		"reset", "show", "toggle", "tui", "uncheck",
	}, registry.Names())

	cmd, ok := registry.Get("toggle")
	require.True(t, ok)
	assert.IsType(t, &ToggleCommand{}, cmd)
}

func TestCommandRegistry_Execute(t *testing.T) {
	h := setupTestApp(t, clockAt(10, 25))
	registry := NewCommandRegistry(h.app)
	ctx := context.Background()

	t.Run("executes check command", func(t *testing.T) {
		require.NoError(t, registry.Execute(ctx, "check", []string{"3"}))
		assert.Equal(t, []bool{false, false, true}, h.saved("2024-05-01"))
	})

	t.Run("executes uncheck command", func(t *testing.T) {
		require.NoError(t, registry.Execute(ctx, "uncheck", []string{"3"}))
		assert.Equal(t, []bool{false, false, false}, h.saved("2024-05-01"))
	})

	t.Run("unknown command", func(t *testing.T) {
		err := registry.Execute(ctx, "launch", nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})
}

func TestCommandRegistry_GetUsage(t *testing.T) {
	h := setupTestApp(t, clockAt(10, 25))
	usage := NewCommandRegistry(h.app).GetUsage()
	assert.Contains(t, usage, "usage: belt [")
	assert.Contains(t, usage, "done-all")
}

func TestApp_Run(t *testing.T) {
	h := setupTestApp(t, clockAt(10, 25))
	ctx := context.Background()

	require.NoError(t, h.app.Run(ctx, nil))
	assert.Contains(t, h.out.String(), "Test day")
	assert.Equal(t, 1, h.api.calls["Board"])

	require.NoError(t, h.app.Run(ctx, []string{"toggle", "2"}))
	assert.Equal(t, []bool{false, true, false}, h.saved("2024-05-01"))
}
