package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybelt/internal/domain"
	"daybelt/internal/errors"
)

func planTasks() []domain.Task {
	return []domain.Task{
		domain.NewTask("10:00–10:20", "Dishes"),
		domain.NewTask("10:20–10:40", "Laundry"),
		domain.NewTask("10:40–11:00", "Walk Bo 🐾"),
	}
}

func TestProgressService_Load(t *testing.T) {
	const date = "2024-05-01"
	current := planTasks()

	tests := []struct {
		name        string
		setup       func(m *memoryStore)
		wantSource  domain.Source
		wantDone    []bool
		wantWarning bool
	}{
		{
			name:       "no snapshot gives defaults",
			setup:      func(m *memoryStore) {},
			wantSource: domain.SourceDefaults,
			wantDone:   []bool{false, false, false},
		},
		{
			name: "matching schedule returns saved states",
			setup: func(m *memoryStore) {
				states := domain.DefaultStates(current)
				states[1].Done = true
				m.snapshots[date] = domain.NewSnapshot(date, states)
			},
			wantSource: domain.SourceSnapshot,
			wantDone:   []bool{false, true, false},
		},
		{
			name: "edited schedule carries flags by label",
			setup: func(m *memoryStore) {
				m.snapshots[date] = domain.NewSnapshot(date, []domain.TaskState{
					{Task: domain.NewTask("9:00-9:20", "  DISHES "), Done: true},
					{Task: domain.NewTask("9:20-9:40", "Old task"), Done: true},
				})
			},
			wantSource: domain.SourceReconciled,
			wantDone:   []bool{true, false, false},
		},
		{
			name: "corrupt snapshot falls back with a warning",
			setup: func(m *memoryStore) {
				m.loadErrs[date] = errors.NewCorruptSnapshotError(date, stderrors.New("bad json"))
			},
			wantSource:  domain.SourceDefaults,
			wantDone:    []bool{false, false, false},
			wantWarning: true,
		},
		{
			name: "unreadable storage falls back with a warning",
			setup: func(m *memoryStore) {
				m.loadErrs[date] = errors.NewStorageError("read snapshot", stderrors.New("io error"))
			},
			wantSource:  domain.SourceDefaults,
			wantDone:    []bool{false, false, false},
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			tt.setup(store)

			result := NewProgressService(store).Load(context.Background(), date, current)

			assert.Equal(t, tt.wantSource, result.Source)
			require.Len(t, result.States, len(current))
			for i, want := range tt.wantDone {
				assert.Equal(t, want, result.States[i].Done, "task %d", i)
			}
			if tt.wantWarning {
				assert.Error(t, result.Warning)
			} else {
				assert.NoError(t, result.Warning)
			}
		})
	}
}

func TestProgressService_LoadFastPathKeepsSavedOrder(t *testing.T) {
	const date = "2024-05-01"
	current := planTasks()
	store := newMemoryStore()

	saved := []domain.TaskState{
		{Task: current[2], Done: true},
		{Task: current[0]},
		{Task: current[1]},
	}
	store.snapshots[date] = domain.NewSnapshot(date, saved)

	result := NewProgressService(store).Load(context.Background(), date, current)
	assert.Equal(t, domain.SourceSnapshot, result.Source)
	assert.Equal(t, saved, result.States)
}

func TestProgressService_Persist(t *testing.T) {
	store := newMemoryStore()
	svc := NewProgressService(store)
	ctx := context.Background()

	states := domain.DefaultStates(planTasks())
	states[0].Done = true
	require.NoError(t, svc.Persist(ctx, "2024-05-01", states))
	require.NoError(t, svc.Persist(ctx, "2024-05-01", states))

	saved := store.snapshots["2024-05-01"]
	require.NotNil(t, saved)
	assert.Equal(t, domain.Fingerprint(planTasks()), saved.ScheduleKey)
	assert.Equal(t, states, saved.Tasks)

	states[1].Done = true
	assert.False(t, saved.Tasks[1].Done)

	err := svc.Persist(ctx, "May 1", states)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestProgressService_History(t *testing.T) {
	store := newMemoryStore()
	states := domain.DefaultStates(planTasks())
	states[0].Done = true
	store.snapshots["2024-05-02"] = domain.NewSnapshot("2024-05-02", states)
	store.snapshots["2024-05-01"] = domain.NewSnapshot("2024-05-01", domain.DefaultStates(planTasks()))
	store.loadErrs["2024-05-03"] = errors.NewCorruptSnapshotError("2024-05-03", stderrors.New("bad"))

	days, err := NewProgressService(store).History(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, "2024-05-01", days[0].Date)
	assert.Equal(t, 0, days[0].Progress.Percent)
	assert.Equal(t, domain.Progress{Completed: 1, Total: 3, Percent: 33}, days[1].Progress)
	assert.Error(t, days[2].Err)

	store.listErr = stderrors.New("boom")
	_, err = NewProgressService(store).History(context.Background())
	assert.Error(t, err)
}
