package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"daybelt/internal/domain"
	"daybelt/internal/errors"
	"daybelt/internal/logging"
	"daybelt/internal/plan"
	"daybelt/internal/validation"
)

// CSVHeader is the first row of every export
var CSVHeader = []string{"time", "task", "done"}

// checklistServiceImpl implements the ChecklistService interface
type checklistServiceImpl struct {
	progress      ProgressService
	plan          *plan.Plan
	clock         Clock
	taskValidator *validation.TaskValidator
}

// NewChecklistService creates a new ChecklistService for plan p
func NewChecklistService(progress ProgressService, p *plan.Plan, clock Clock) ChecklistService {
	if p == nil {
		p = plan.Default()
	}
	if clock == nil {
		clock = time.Now
	}
	return &checklistServiceImpl{
		progress:      progress,
		plan:          p,
		clock:         clock,
		taskValidator: validation.NewTaskValidator(),
	}
}

// Open starts today's session, restoring any saved progress
func (c *checklistServiceImpl) Open(ctx context.Context) (*Session, error) {
	date := domain.DateOf(c.clock())
	result := c.progress.Load(ctx, date, c.plan.Tasks)

	return &Session{
		Date:    date,
		Plan:    c.plan,
		Tasks:   result.States,
		Source:  result.Source,
		Warning: result.Warning,
	}, nil
}

// Toggle flips one task's done flag
func (c *checklistServiceImpl) Toggle(ctx context.Context, s *Session, index int) error {
	if err := c.taskValidator.ValidateIndex(index, len(s.Tasks)); err != nil {
		return err
	}
	c.rollover(ctx, s)
	s.Tasks[index].Done = !s.Tasks[index].Done
	return c.persist(ctx, s)
}

// SetDone sets one task's done flag
func (c *checklistServiceImpl) SetDone(ctx context.Context, s *Session, index int, done bool) error {
	if err := c.taskValidator.ValidateIndex(index, len(s.Tasks)); err != nil {
		return err
	}
	c.rollover(ctx, s)
	s.Tasks[index].Done = done
	return c.persist(ctx, s)
}

// Reset marks every task not done
func (c *checklistServiceImpl) Reset(ctx context.Context, s *Session) error {
	return c.setAll(ctx, s, false)
}

// MarkAll marks every task done
func (c *checklistServiceImpl) MarkAll(ctx context.Context, s *Session) error {
	return c.setAll(ctx, s, true)
}

func (c *checklistServiceImpl) setAll(ctx context.Context, s *Session, done bool) error {
	c.rollover(ctx, s)
	for i := range s.Tasks {
		s.Tasks[i].Done = done
	}
	return c.persist(ctx, s)
}

// Replan switches the session to a new plan, carrying done flags over by
// label, and saves the result. Later Open calls use the new plan too.
func (c *checklistServiceImpl) Replan(ctx context.Context, s *Session, p *plan.Plan) error {
	if p == nil {
		return errors.NewInvalidInputError("plan", nil, "plan is required")
	}
	c.plan = p
	s.Plan = p

	c.rollover(ctx, s)
	if sameTasks(domain.TasksOf(s.Tasks), p.Tasks) {
		return nil
	}
	s.Tasks = domain.Reconcile(s.Tasks, p.Tasks)
	s.Source = domain.SourceReconciled
	return c.persist(ctx, s)
}

func sameTasks(a, b []domain.Task) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Current returns the index of the task whose slot contains now, or -1
func (c *checklistServiceImpl) Current(s *Session, now time.Time) int {
	return domain.CurrentIndex(s.Tasks, now)
}

// ExportCSV writes states as time,task,done rows
func (c *checklistServiceImpl) ExportCSV(w io.Writer, states []domain.TaskState) error {
	return WriteCSV(w, states)
}

// rollover moves a session opened on an earlier day onto today's progress
// so changes after midnight are saved under the new date.
func (c *checklistServiceImpl) rollover(ctx context.Context, s *Session) {
	today := domain.DateOf(c.clock())
	if today == s.Date {
		return
	}
	result := c.progress.Load(ctx, today, s.Plan.Tasks)
	logging.Default().Info("checklist rolled over", "from", s.Date, "to", today)
	s.Date = today
	s.Tasks = result.States
	s.Source = result.Source
	s.Warning = result.Warning
}

func (c *checklistServiceImpl) persist(ctx context.Context, s *Session) error {
	if err := c.progress.Persist(ctx, s.Date, s.Tasks); err != nil {
		return &PersistError{Date: s.Date, Err: err}
	}
	return nil
}

// WriteCSV writes states with a time,task,done header. Done is written as
// True or False.
func WriteCSV(w io.Writer, states []domain.TaskState) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, s := range states {
		row := []string{s.Time, s.Label, csvBool(s.Done)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func csvBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
