package services

import (
	"context"
	"sort"

	"daybelt/internal/domain"
	"daybelt/internal/errors"
)

// memoryStore implements SnapshotStore in memory for testing
type memoryStore struct {
	snapshots map[string]*domain.Snapshot
	loadErrs  map[string]error
	saveErr   error
	listErr   error
	saves     int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		snapshots: make(map[string]*domain.Snapshot),
		loadErrs:  make(map[string]error),
	}
}

func (m *memoryStore) Load(ctx context.Context, date string) (*domain.Snapshot, error) {
	if err, ok := m.loadErrs[date]; ok {
		return nil, err
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
	if m.listErr != nil {
		return nil, m.listErr
	}
	dates := make([]string, 0, len(m.snapshots)+len(m.loadErrs))
	for d := range m.snapshots {
		dates = append(dates, d)
	}
	for d := range m.loadErrs {
		if _, ok := m.snapshots[d]; !ok {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

func (m *memoryStore) Close() error { return nil }
