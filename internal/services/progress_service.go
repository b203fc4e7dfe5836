package services

import (
	"context"

	"daybelt/internal/domain"
	"daybelt/internal/errors"
	"daybelt/internal/logging"
	"daybelt/internal/repository"
)

// SnapshotStore is the persistence the services need
type SnapshotStore = repository.SnapshotRepository

// progressServiceImpl implements the ProgressService interface
type progressServiceImpl struct {
	repo SnapshotStore
}

// NewProgressService creates a new ProgressService instance
func NewProgressService(repo SnapshotStore) ProgressService {
	return &progressServiceImpl{repo: repo}
}

// Load restores the task states for date against the current plan tasks
func (p *progressServiceImpl) Load(ctx context.Context, date string, current []domain.Task) LoadResult {
	snapshot, err := p.repo.Load(ctx, date)
	if err != nil {
		if errors.IsNotFound(err) {
			return LoadResult{States: domain.DefaultStates(current), Source: domain.SourceDefaults}
		}
		logging.Default().Warn("ignoring saved progress", "date", date, "err", err)
		return LoadResult{
			States:  domain.DefaultStates(current),
			Source:  domain.SourceDefaults,
			Warning: err,
		}
	}

	states, source := domain.Restore(snapshot, current)
	logging.Debugf("restored %d tasks for %s from %s", len(states), date, source)
	return LoadResult{States: states, Source: source}
}

// Persist saves states as the snapshot for date
func (p *progressServiceImpl) Persist(ctx context.Context, date string, states []domain.TaskState) error {
	if _, err := domain.ParseDate(date); err != nil {
		return errors.NewInvalidInputError("date", date, "expected YYYY-MM-DD")
	}
	return p.repo.Save(ctx, domain.NewSnapshot(date, states))
}

// History summarizes every saved day, oldest first. Days whose snapshot
// cannot be read are listed with Err set.
func (p *progressServiceImpl) History(ctx context.Context) ([]DaySummary, error) {
	dates, err := p.repo.ListDates(ctx)
	if err != nil {
		return nil, err
	}

	days := make([]DaySummary, 0, len(dates))
	for _, date := range dates {
		snapshot, err := p.repo.Load(ctx, date)
		if err != nil {
			days = append(days, DaySummary{Date: date, Err: err})
			continue
		}
		days = append(days, DaySummary{
			Date:     date,
			Progress: domain.ComputeProgress(snapshot.Tasks),
		})
	}
	return days, nil
}
