// Package sqlite stores daily snapshots in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"daybelt/internal/domain"
	"daybelt/internal/errors"
	"daybelt/internal/logging"
	"daybelt/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

var timeNow = time.Now

// SQLiteRepository implements repository.SnapshotRepository
type SQLiteRepository struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath and migrates it
func New(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewStorageError("enable foreign keys", err)
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	logging.Debugf("opened sqlite snapshot store %s", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Load reads the snapshot for date with its tasks in saved order
func (r *SQLiteRepository) Load(ctx context.Context, date string) (*domain.Snapshot, error) {
	query := `
	SELECT date, schedule_key, updated_at
	FROM snapshots
	WHERE date = ?`

	row, err := QuerySingle(ctx, r.db, query, ScanSnapshot, "snapshot", date, date)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		return nil, errors.NewCorruptSnapshotError(date, err)
	}

	tasksQuery := `
	SELECT position, time, task, done
	FROM snapshot_tasks
	WHERE date = ?
	ORDER BY position ASC`

	tasks, err := QueryMultiple(ctx, r.db, tasksQuery, ScanTasks, "snapshot tasks", date)
	if err != nil {
		return nil, errors.NewCorruptSnapshotError(date, err)
	}
	for i, t := range tasks {
		if t.Position != i {
			return nil, errors.NewCorruptSnapshotError(date, fmt.Errorf("task position %d missing", i))
		}
	}

	logging.Debugf("loaded snapshot %s saved at %s", date, row.UpdatedAt.Format(time.RFC3339))
	return toDomain(row, tasks), nil
}

// Save replaces the snapshot for snapshot.Date in a single transaction
func (r *SQLiteRepository) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return errors.NewInvalidInputError("snapshot", nil, "snapshot is required")
	}

	return ExecuteInTx(ctx, r.db, "save snapshot", func(tx *sql.Tx) error {
		upsert := `
		INSERT INTO snapshots (date, schedule_key, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			schedule_key = excluded.schedule_key,
			updated_at = excluded.updated_at`

		if _, err := tx.ExecContext(ctx, upsert, snapshot.Date, snapshot.ScheduleKey, FormatTimeForDB(timeNow())); err != nil {
			return HandleDatabaseError("upsert snapshot", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_tasks WHERE date = ?`, snapshot.Date); err != nil {
			return HandleDatabaseError("clear snapshot tasks", err)
		}

		insert := `
		INSERT INTO snapshot_tasks (date, position, time, task, done)
		VALUES (?, ?, ?, ?, ?)`

		stmt, err := tx.PrepareContext(ctx, insert)
		if err != nil {
			return HandleDatabaseError("prepare task insert", err)
		}
		defer stmt.Close()

		for _, t := range taskRowsOf(snapshot) {
			if _, err := stmt.ExecContext(ctx, snapshot.Date, t.Position, t.Time, t.Task, boolToDB(t.Done)); err != nil {
				return HandleDatabaseError("insert snapshot task", err)
			}
		}
		return nil
	})
}

// ListDates returns every stored date, oldest first
func (r *SQLiteRepository) ListDates(ctx context.Context) ([]string, error) {
	query := `SELECT date FROM snapshots ORDER BY date ASC`

	found, err := QueryMultiple(ctx, r.db, query, ScanDates, "snapshot dates")
	if err != nil {
		return nil, err
	}

	dates := make([]string, len(found))
	for i, d := range found {
		dates[i] = *d
	}
	return dates, nil
}
