package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"sort"
	"testing"
	"time"

	"daybelt/internal/api"
	"daybelt/internal/config"
	"daybelt/internal/domain"
	"daybelt/internal/errors"
	"daybelt/internal/plan"
	"daybelt/internal/services"
)

// memoryStore keeps snapshots in a map and can be told to refuse saves
type memoryStore struct {
	snapshots map[string]*domain.Snapshot
	loadErr   error
	saveErr   error
	saves     int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{snapshots: make(map[string]*domain.Snapshot)}
}

func (m *memoryStore) Load(ctx context.Context, date string) (*domain.Snapshot, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	s, ok := m.snapshots[date]
	if !ok {
		return nil, errors.NewNotFoundError("snapshot", date)
	}
	cp := *s
	cp.Tasks = domain.CloneStates(s.Tasks)
	return &cp, nil
}

func (m *memoryStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *snapshot
	cp.Tasks = domain.CloneStates(snapshot.Tasks)
	m.snapshots[snapshot.Date] = &cp
	m.saves++
	return nil
}

func (m *memoryStore) ListDates(ctx context.Context) ([]string, error) {
	dates := make([]string, 0, len(m.snapshots))
	for date := range m.snapshots {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

func (m *memoryStore) Close() error { return nil }

// mockBusinessAPI wraps the real API over a memory store and lets tests
// inject failures and count calls
type mockBusinessAPI struct {
	api.BusinessAPI
	boardErr   error
	historyErr error
	calls      map[string]int
}

func (m *mockBusinessAPI) Board(ctx context.Context) (*api.Board, error) {
	m.calls["Board"]++
	if m.boardErr != nil {
		return nil, m.boardErr
	}
	return m.BusinessAPI.Board(ctx)
}

func (m *mockBusinessAPI) Reset(ctx context.Context) (*api.Board, error) {
	m.calls["Reset"]++
	return m.BusinessAPI.Reset(ctx)
}

func (m *mockBusinessAPI) History(ctx context.Context) ([]services.DaySummary, error) {
	m.calls["History"]++
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	return m.BusinessAPI.History(ctx)
}

func testPlan() *plan.Plan {
	return &plan.Plan{
		Title:   "Test day",
		Caption: "One belt.",
		Tip:     "Tip: keep moving.",
		Tasks: []domain.Task{
			domain.NewTask("10:00–10:20", "Dishes"),
			domain.NewTask("10:20–10:40", "Laundry"),
			domain.NewTask("10:40–11:00", "Walk Bo"),
		},
	}
}

func clockAt(h, m int) services.Clock {
	return func() time.Time { return time.Date(2024, 5, 1, h, m, 0, 0, time.UTC) }
}

var errReadOnly = errors.NewStorageError("write snapshot", stderrors.New("read-only file system"))

// testHarness bundles an App with its captured output and backing store
type testHarness struct {
	app    *App
	api    *mockBusinessAPI
	store  *memoryStore
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func setupTestApp(t *testing.T, clock services.Clock, opts ...AppOption) *testHarness {
	t.Helper()

	store := newMemoryStore()
	mock := &mockBusinessAPI{
		BusinessAPI: api.NewBusinessAPI(store, testPlan(), clock),
		calls:       make(map[string]int),
	}

	cfg := config.NewConfig()
	cfg.Storage.Dir = t.TempDir()
	cfg.Display.BarWidth = 10

	h := &testHarness{
		api:    mock,
		store:  store,
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
	}
	base := []AppOption{
		WithOutput(h.out, h.errOut),
		WithInteractive(func() bool { return false }),
		WithConfirm(func(string) (bool, error) {
			t.Fatal("unexpected confirmation prompt")
			return false, nil
		}),
	}
	h.app = NewApp(mock, cfg, append(base, opts...)...)
	return h
}

func (h *testHarness) saved(date string) []bool {
	s, ok := h.store.snapshots[date]
	if !ok {
		return nil
	}
	flags := make([]bool, len(s.Tasks))
	for i, task := range s.Tasks {
		flags[i] = task.Done
	}
	return flags
}
