package sqlite

import "daybelt/internal/domain"

// toDomain assembles a snapshot from its header row and ordered task rows
func toDomain(row *snapshotRow, tasks []*taskRow) *domain.Snapshot {
	states := make([]domain.TaskState, 0, len(tasks))
	for _, t := range tasks {
		states = append(states, domain.TaskState{
			Task: domain.NewTask(t.Time, t.Task),
			Done: t.Done,
		})
	}
	return &domain.Snapshot{
		Date:        row.Date,
		ScheduleKey: row.ScheduleKey,
		Tasks:       states,
	}
}

// taskRowsOf flattens snapshot tasks into positioned rows
func taskRowsOf(snapshot *domain.Snapshot) []*taskRow {
	rows := make([]*taskRow, len(snapshot.Tasks))
	for i, s := range snapshot.Tasks {
		rows[i] = &taskRow{
			Position: i,
			Time:     s.Time,
			Task:     s.Label,
			Done:     s.Done,
		}
	}
	return rows
}
