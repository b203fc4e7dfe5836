// Package tui is the interactive checklist: one screen, one cursor, every
// change saved as it happens.
package tui

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"daybelt/internal/api"
	"daybelt/internal/errors"
	"daybelt/internal/logging"
	"daybelt/internal/plan"
	"daybelt/internal/services"
)

// Options configures a Model.
type Options struct {
	BarWidth   int
	ExportPath string
	// Updates delivers reloaded plans; nil disables live reload.
	Updates <-chan plan.Update
	// Clock defaults to the business API's clock.
	Clock func() time.Time
	// CopyText defaults to the system clipboard.
	CopyText func(string) error
}

// planUpdateMsg carries a plan reload from the watcher.
type planUpdateMsg plan.Update

// Model is the bubbletea model for the checklist.
type Model struct {
	ctx       context.Context
	checklist services.ChecklistService
	session   *services.Session
	opts      Options

	keys   keyMap
	help   help.Model
	cursor int
	status string

	quitting bool
}

// New opens today's session and places the cursor on the current slot.
func New(ctx context.Context, businessAPI api.BusinessAPI, opts Options) (Model, error) {
	if opts.Clock == nil {
		opts.Clock = businessAPI.Clock()
	}
	if opts.CopyText == nil {
		opts.CopyText = clipboard.WriteAll
	}
	if opts.BarWidth < 2 {
		opts.BarWidth = 30
	}

	session, err := businessAPI.OpenSession(ctx)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		ctx:       ctx,
		checklist: businessAPI.Checklist(),
		session:   session,
		opts:      opts,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	if session.Warning != nil {
		m.status = "⚠ " + errors.GetUserMessage(session.Warning)
	}
	if idx := m.checklist.Current(session, opts.Clock()); idx >= 0 {
		m.cursor = idx
	}
	return m, nil
}

// Init starts the plan listener when live reload is enabled.
func (m Model) Init() tea.Cmd {
	return m.waitForPlan()
}

func (m Model) waitForPlan() tea.Cmd {
	if m.opts.Updates == nil {
		return nil
	}
	updates := m.opts.Updates
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}
		return planUpdateMsg(u)
	}
}

// Update handles key presses, plan reloads and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case planUpdateMsg:
		m.applyPlan(plan.Update(msg))
		return m, m.waitForPlan()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.session.Tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if len(m.session.Tasks) == 0 {
			return m, nil
		}
		m.report(m.checklist.Toggle(m.ctx, m.session, m.cursor), "")

	case key.Matches(msg, m.keys.Reset):
		m.report(m.checklist.Reset(m.ctx, m.session), "All tasks reset.")

	case key.Matches(msg, m.keys.MarkAll):
		m.report(m.checklist.MarkAll(m.ctx, m.session), "All tasks marked done.")

	case key.Matches(msg, m.keys.Export):
		m.report(m.exportFile(), "Exported to "+m.opts.ExportPath+".")

	case key.Matches(msg, m.keys.Copy):
		m.report(m.copyCSV(), "Copied CSV to the clipboard.")

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// report sets the status line from the outcome of an action. A failed save
// keeps the change on screen and says so.
func (m *Model) report(err error, success string) {
	if err == nil {
		m.status = success
		return
	}

	var persistErr *services.PersistError
	if stderrors.As(err, &persistErr) {
		m.status = "⚠ Not saved: " + errors.GetUserMessage(persistErr.Err)
		logging.Default().Warn("progress not saved", "date", persistErr.Date, "err", persistErr.Err)
		return
	}
	m.status = "✗ " + errors.GetUserMessage(err)
}

func (m *Model) applyPlan(u plan.Update) {
	if u.Err != nil {
		m.status = "✗ Plan not reloaded: " + errors.GetUserMessage(u.Err)
		return
	}
	err := m.checklist.Replan(m.ctx, m.session, u.Plan)
	if m.cursor >= len(m.session.Tasks) {
		m.cursor = max(len(m.session.Tasks)-1, 0)
	}
	m.report(err, "Plan reloaded.")
}

func (m Model) csv() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.checklist.ExportCSV(&buf, m.session.Tasks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m Model) exportFile() error {
	if m.opts.ExportPath == "" {
		return errors.NewInvalidInputError("export_filename", "", "no export file configured")
	}
	data, err := m.csv()
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.opts.ExportPath, data, 0o644); err != nil {
		return errors.NewStorageError("export csv", err)
	}
	return nil
}

func (m Model) copyCSV() error {
	data, err := m.csv()
	if err != nil {
		return err
	}
	if err := m.opts.CopyText(string(data)); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// Session returns the live session.
func (m Model) Session() *services.Session {
	return m.session
}

// Cursor returns the selected row.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
