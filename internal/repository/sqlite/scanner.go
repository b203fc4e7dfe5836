package sqlite

import (
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanSnapshot scans a snapshot header row
func ScanSnapshot(scanner Scanner) (*snapshotRow, error) {
	row := &snapshotRow{}
	var updatedAt string

	if err := scanner.Scan(&row.Date, &row.ScheduleKey, &updatedAt); err != nil {
		return nil, err
	}

	t, err := ParseTimeFromDB(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}
	row.UpdatedAt = t

	return row, nil
}

// ScanTask scans a single task row
func ScanTask(scanner Scanner) (*taskRow, error) {
	row := &taskRow{}
	var done int64

	if err := scanner.Scan(&row.Position, &row.Time, &row.Task, &done); err != nil {
		return nil, err
	}
	if done != 0 && done != 1 {
		return nil, fmt.Errorf("done flag must be 0 or 1, got %d", done)
	}
	row.Done = done == 1

	return row, nil
}

// ScanTasks scans task rows in result order
func ScanTasks(rows Rows) ([]*taskRow, error) {
	var tasks []*taskRow
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanDates scans a single-column list of dates
func ScanDates(rows Rows) ([]*string, error) {
	var dates []*string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}
