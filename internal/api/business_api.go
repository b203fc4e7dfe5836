package api

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"daybelt/internal/domain"
	"daybelt/internal/errors"
	"daybelt/internal/plan"
	"daybelt/internal/services"
	"daybelt/internal/validation"
)

// Board is everything needed to render today's checklist
type Board struct {
	Title    string             `json:"title"`
	Caption  string             `json:"caption"`
	Tip      string             `json:"tip"`
	Date     string             `json:"date"`
	Tasks    []domain.TaskState `json:"tasks"`
	Progress domain.Progress    `json:"progress"`
	// Current is the index of the task whose slot contains now, or -1.
	Current int           `json:"current"`
	Source  domain.Source `json:"source"`
	// Warning is set when saved progress could not be used.
	Warning error `json:"-"`
}

// CurrentSlot is the task in progress right now
type CurrentSlot struct {
	Number int               `json:"number"`
	Task   *domain.TaskState `json:"task"`
	Now    time.Time         `json:"now"`
}

// BusinessAPI defines the checklist workflows the command line and the TUI use
type BusinessAPI interface {
	// ========== Checklist Workflows ==========

	// Board opens today's checklist
	Board(ctx context.Context) (*Board, error)

	// Toggle flips the given 1-based task numbers, saving after each
	Toggle(ctx context.Context, numbers []string) (*Board, error)

	// SetDone marks the given 1-based task numbers done or not done
	SetDone(ctx context.Context, numbers []string, done bool) (*Board, error)

	// Reset marks every task not done
	Reset(ctx context.Context) (*Board, error)

	// MarkAll marks every task done
	MarkAll(ctx context.Context) (*Board, error)

	// ========== Query Operations ==========

	// Now returns the current slot, or nil when no slot contains now
	Now(ctx context.Context) (*CurrentSlot, error)

	// ExportCSV writes today's checklist as CSV
	ExportCSV(ctx context.Context, w io.Writer) error

	// History summarizes every saved day
	History(ctx context.Context) ([]services.DaySummary, error)

	// ========== Interactive Sessions ==========

	// OpenSession returns a live session for interactive use
	OpenSession(ctx context.Context) (*services.Session, error)

	// Checklist exposes the session operations
	Checklist() services.ChecklistService

	// Clock is the clock sessions are dated by
	Clock() services.Clock
}

// businessAPIImpl implements the BusinessAPI interface
type businessAPIImpl struct {
	services      *services.ServiceContainer
	clock         services.Clock
	taskValidator *validation.TaskValidator
}

// NewBusinessAPI creates a new BusinessAPI over a snapshot store and plan
func NewBusinessAPI(repo services.SnapshotStore, p *plan.Plan, clock services.Clock) BusinessAPI {
	if clock == nil {
		clock = time.Now
	}
	return &businessAPIImpl{
		services:      services.NewServiceContainer(repo, p, clock),
		clock:         clock,
		taskValidator: validation.NewTaskValidator(),
	}
}

// ========== Checklist Workflows ==========

func (b *businessAPIImpl) Board(ctx context.Context) (*Board, error) {
	s, err := b.OpenSession(ctx)
	if err != nil {
		return nil, err
	}
	return b.boardOf(s), nil
}

func (b *businessAPIImpl) Toggle(ctx context.Context, numbers []string) (*Board, error) {
	return b.apply(ctx, numbers, func(s *services.Session, idx int) error {
		return b.Checklist().Toggle(ctx, s, idx)
	})
}

func (b *businessAPIImpl) SetDone(ctx context.Context, numbers []string, done bool) (*Board, error) {
	return b.apply(ctx, numbers, func(s *services.Session, idx int) error {
		return b.Checklist().SetDone(ctx, s, idx, done)
	})
}

func (b *businessAPIImpl) Reset(ctx context.Context) (*Board, error) {
	s, err := b.OpenSession(ctx)
	if err != nil {
		return nil, err
	}
	err = b.Checklist().Reset(ctx, s)
	return b.boardOf(s), err
}

func (b *businessAPIImpl) MarkAll(ctx context.Context) (*Board, error) {
	s, err := b.OpenSession(ctx)
	if err != nil {
		return nil, err
	}
	err = b.Checklist().MarkAll(ctx, s)
	return b.boardOf(s), err
}

// apply validates every number before touching the session. A persist failure
// does not stop later mutations; the first one is returned with the board.
func (b *businessAPIImpl) apply(ctx context.Context, numbers []string, mutate func(*services.Session, int) error) (*Board, error) {
	s, err := b.OpenSession(ctx)
	if err != nil {
		return nil, err
	}

	indices, err := b.taskValidator.ParseTaskNumbers(numbers, len(s.Tasks))
	if err != nil {
		return nil, errors.NewValidationError("invalid task number", err)
	}

	var persistErr error
	for _, idx := range indices {
		if err := mutate(s, idx); err != nil {
			var pe *services.PersistError
			if !stderrors.As(err, &pe) {
				return nil, err
			}
			if persistErr == nil {
				persistErr = err
			}
		}
	}
	return b.boardOf(s), persistErr
}

// ========== Query Operations ==========

func (b *businessAPIImpl) Now(ctx context.Context) (*CurrentSlot, error) {
	s, err := b.OpenSession(ctx)
	if err != nil {
		return nil, err
	}

	now := b.clock()
	idx := b.Checklist().Current(s, now)
	if idx < 0 {
		return nil, nil
	}
	return &CurrentSlot{Number: idx + 1, Task: &s.Tasks[idx], Now: now}, nil
}

func (b *businessAPIImpl) ExportCSV(ctx context.Context, w io.Writer) error {
	s, err := b.OpenSession(ctx)
	if err != nil {
		return err
	}
	return b.Checklist().ExportCSV(w, s.Tasks)
}

func (b *businessAPIImpl) History(ctx context.Context) ([]services.DaySummary, error) {
	return b.services.ProgressService.History(ctx)
}

// ========== Interactive Sessions ==========

func (b *businessAPIImpl) OpenSession(ctx context.Context) (*services.Session, error) {
	return b.Checklist().Open(ctx)
}

func (b *businessAPIImpl) Checklist() services.ChecklistService {
	return b.services.ChecklistService
}

func (b *businessAPIImpl) Clock() services.Clock {
	return b.clock
}

// BoardOf renders a session as a board at the given instant
func BoardOf(s *services.Session, now time.Time) *Board {
	p := s.Plan
	if p == nil {
		p = plan.Default()
	}
	return &Board{
		Title:    p.Title,
		Caption:  p.Caption,
		Tip:      p.Tip,
		Date:     s.Date,
		Tasks:    domain.CloneStates(s.Tasks),
		Progress: s.Progress(),
		Current:  domain.CurrentIndex(s.Tasks, now),
		Source:   s.Source,
		Warning:  s.Warning,
	}
}

func (b *businessAPIImpl) boardOf(s *services.Session) *Board {
	return BoardOf(s, b.clock())
}
