package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used in snapshots and file names.
const DateLayout = "2006-01-02"

// Snapshot is the persisted record of one day's task states.
type Snapshot struct {
	Date        string      `json:"date"`
	ScheduleKey string      `json:"schedule_key"`
	Tasks       []TaskState `json:"tasks"`
}

// NewSnapshot builds the snapshot for date, keyed by the fingerprint of states.
func NewSnapshot(date string, states []TaskState) *Snapshot {
	tasks := CloneStates(states)
	if tasks == nil {
		tasks = []TaskState{}
	}
	return &Snapshot{
		Date:        date,
		ScheduleKey: Fingerprint(TasksOf(states)),
		Tasks:       tasks,
	}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate checks that s is a YYYY-MM-DD date and returns it unchanged.
func ParseDate(s string) (string, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return s, nil
}
