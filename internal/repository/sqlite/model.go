package sqlite

import "time"

// snapshotRow mirrors a row of the snapshots table
type snapshotRow struct {
	Date        string
	ScheduleKey string
	UpdatedAt   time.Time
}

// taskRow mirrors a row of the snapshot_tasks table
type taskRow struct {
	Position int
	Time     string
	Task     string
	Done     bool
}
