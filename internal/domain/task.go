package domain

import "fmt"

// Task is one time-boxed line of a day plan.
// Time is a display string such as "10:00–10:20"; it carries no scheduling meaning
// beyond highlighting the current slot.
type Task struct {
	Time  string `json:"time" yaml:"time" toml:"time"`
	Label string `json:"task" yaml:"task" toml:"task"`
}

// NewTask creates a Task from a time range and label.
func NewTask(timeRange, label string) Task {
	return Task{
		Time:  timeRange,
		Label: label,
	}
}

// IsValid checks if the task has a label.
func (t Task) IsValid() bool {
	return NormalizeLabel(t.Label) != ""
}

// Key returns the identity used to match the task across plan edits.
func (t Task) Key() string {
	return NormalizeLabel(t.Label)
}

// String returns "[time] label" for display purposes.
func (t Task) String() string {
	return fmt.Sprintf("[%s] %s", t.Time, t.Label)
}

// TaskState is a Task plus its completion flag.
type TaskState struct {
	Task
	Done bool `json:"done"`
}

// TasksOf strips completion flags from states.
func TasksOf(states []TaskState) []Task {
	tasks := make([]Task, len(states))
	for i, s := range states {
		tasks[i] = s.Task
	}
	return tasks
}

// CloneStates returns a copy of states that shares no backing array.
func CloneStates(states []TaskState) []TaskState {
	if states == nil {
		return nil
	}
	out := make([]TaskState, len(states))
	copy(out, states)
	return out
}
