package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"daybelt/internal/domain"
	"daybelt/internal/plan"
)

// Clock returns the current time in the pinned zone
type Clock func() time.Time

// LoadResult is a day's restored task list and where it came from
type LoadResult struct {
	States []domain.TaskState `json:"states"`
	Source domain.Source      `json:"source"`
	// Warning is set when a saved snapshot existed but could not be used.
	Warning error `json:"-"`
}

// DaySummary describes one saved day for the history view
type DaySummary struct {
	Date     string          `json:"date"`
	Progress domain.Progress `json:"progress"`
	Err      error           `json:"-"`
}

// Session is one open checklist: a date, the plan in force and the live task
// states. It is owned by whoever opened it and passed to every operation.
type Session struct {
	Date    string
	Plan    *plan.Plan
	Tasks   []domain.TaskState
	Source  domain.Source
	Warning error
}

// Progress summarizes the session's task states
func (s *Session) Progress() domain.Progress {
	return domain.ComputeProgress(s.Tasks)
}

// PersistError reports a mutation that was applied in memory but could not be
// saved. It is not fatal: the session keeps the new state.
type PersistError struct {
	Date string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("progress for %s was not saved: %v", e.Date, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// ProgressService restores and saves a day's task states
type ProgressService interface {
	// Load never fails: unusable snapshots fall back to defaults and are
	// reported through LoadResult.Warning.
	Load(ctx context.Context, date string, current []domain.Task) LoadResult
	Persist(ctx context.Context, date string, states []domain.TaskState) error
	History(ctx context.Context) ([]DaySummary, error)
}

// ChecklistService applies user actions to a session and saves after each one
type ChecklistService interface {
	Open(ctx context.Context) (*Session, error)
	Toggle(ctx context.Context, s *Session, index int) error
	SetDone(ctx context.Context, s *Session, index int, done bool) error
	Reset(ctx context.Context, s *Session) error
	MarkAll(ctx context.Context, s *Session) error
	Replan(ctx context.Context, s *Session, p *plan.Plan) error
	Current(s *Session, now time.Time) int
	ExportCSV(w io.Writer, states []domain.TaskState) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	ProgressService  ProgressService
	ChecklistService ChecklistService
}

// NewServiceContainer wires the services around a snapshot repository
func NewServiceContainer(repo SnapshotStore, p *plan.Plan, clock Clock) *ServiceContainer {
	progress := NewProgressService(repo)
	return &ServiceContainer{
		ProgressService:  progress,
		ChecklistService: NewChecklistService(progress, p, clock),
	}
}
