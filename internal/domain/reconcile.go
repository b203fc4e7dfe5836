package domain

// Source records where a loaded task list came from.
type Source string

const (
	// SourceDefaults means nothing usable was saved for the day.
	SourceDefaults Source = "defaults"
	// SourceSnapshot means the saved list was returned as stored.
	SourceSnapshot Source = "snapshot"
	// SourceReconciled means done flags were carried over to an edited plan.
	SourceReconciled Source = "reconciled"
)

// DefaultStates returns tasks with every Done flag false.
func DefaultStates(tasks []Task) []TaskState {
	states := make([]TaskState, len(tasks))
	for i, t := range tasks {
		states[i] = TaskState{Task: t}
	}
	return states
}

// Reconcile carries Done flags from saved entries to current tasks by normalized
// label. The result has exactly one entry per current task, in current order.
// When saved holds several entries with the same key the last one wins; tasks
// with no saved match start not done.
func Reconcile(saved []TaskState, current []Task) []TaskState {
	doneByKey := make(map[string]bool, len(saved))
	for _, s := range saved {
		doneByKey[s.Key()] = s.Done
	}

	states := DefaultStates(current)
	for i := range states {
		states[i].Done = doneByKey[states[i].Key()]
	}
	return states
}

// Restore picks the task list for a day given what was saved (nil when nothing
// was). A snapshot whose schedule key matches the current plan is returned as
// stored, in its stored order; otherwise the current plan is reconciled
// against it.
func Restore(snapshot *Snapshot, current []Task) ([]TaskState, Source) {
	if snapshot == nil {
		return DefaultStates(current), SourceDefaults
	}
	if snapshot.ScheduleKey == Fingerprint(current) {
		return CloneStates(snapshot.Tasks), SourceSnapshot
	}
	return Reconcile(snapshot.Tasks, current), SourceReconciled
}
