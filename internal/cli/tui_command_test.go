package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybelt/internal/tui"
)

func TestTUICommand_Execute(t *testing.T) {
	var ran *tui.Model
	h := setupTestApp(t, clockAt(10, 25), WithTUIRunner(func(ctx context.Context, m tui.Model) error {
		ran = &m
		return nil
	}))

	require.NoError(t, NewTUICommand(h.app).Execute(context.Background(), nil))
	require.NotNil(t, ran)
	assert.Equal(t, 1, ran.Cursor())
	assert.Len(t, ran.Session().Tasks, 3)
}

func TestTUICommand_WatchNeedsPlanFile(t *testing.T) {
	h := setupTestApp(t, clockAt(10, 25), WithTUIRunner(func(context.Context, tui.Model) error {
		t.Fatal("checklist should not start")
		return nil
	}))

	cmd := NewTUICommand(h.app)
	cmd.Watch = true
	err := cmd.Execute(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch needs a plan file")
}

func TestTUICommand_WatchesPlanFile(t *testing.T) {
	planPath := filepath.Join(t.TempDir(), "plan.yaml")
	started := false
	h := setupTestApp(t, clockAt(10, 25),
		WithPlanSource(planPath),
		WithTUIRunner(func(ctx context.Context, m tui.Model) error {
			started = true
			return nil
		}))

	cmd := NewTUICommand(h.app)
	cmd.Watch = true
	require.NoError(t, cmd.Execute(context.Background(), nil))
	assert.True(t, started)
}

func TestTUICommand_ExportPath(t *testing.T) {
	h := setupTestApp(t, clockAt(10, 25))
	cmd := NewTUICommand(h.app)

	h.app.config.Display.ExportFilename = "schedule.csv"
	assert.Equal(t, filepath.Join(h.app.config.Storage.Dir, "schedule.csv"), cmd.exportPath())

	abs := filepath.Join(t.TempDir(), "out.csv")
	h.app.config.Display.ExportFilename = abs
	assert.Equal(t, abs, cmd.exportPath())

	h.app.config.Display.ExportFilename = filepath.Join("exports", "out.csv")
	assert.Equal(t, filepath.Join("exports", "out.csv"), cmd.exportPath())
}
