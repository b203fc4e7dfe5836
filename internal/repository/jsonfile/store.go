// Package jsonfile keeps one JSON snapshot file per day in a directory.
package jsonfile

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"daybelt/internal/domain"
	"daybelt/internal/errors"
	"daybelt/internal/logging"
)

const (
	filePrefix = "progress_"
	fileSuffix = ".json"
	filePerm   = 0o644
)

// Store reads and writes progress_YYYY-MM-DD.json files under dir.
type Store struct {
	dir     string
	dirPerm os.FileMode
}

// New creates a store rooted at dir. The directory is created on first Save.
func New(dir string, dirPerm os.FileMode) *Store {
	if dirPerm == 0 {
		dirPerm = 0o755
	}
	return &Store{dir: dir, dirPerm: dirPerm}
}

// FileName returns the snapshot file name for date.
func FileName(date string) string {
	return filePrefix + date + fileSuffix
}

// Path returns the full snapshot path for date.
func (s *Store) Path(date string) string {
	return filepath.Join(s.dir, FileName(date))
}

// Load reads the snapshot for date.
func (s *Store) Load(ctx context.Context, date string) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(date)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError("snapshot", date)
		}
		return nil, errors.NewStorageError("read snapshot", err).WithContext("path", path)
	}

	if err := validateSnapshot(data); err != nil {
		return nil, errors.NewCorruptSnapshotError(date, err).WithContext("path", path)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.NewCorruptSnapshotError(date, err).WithContext("path", path)
	}
	if snapshot.Tasks == nil {
		snapshot.Tasks = []domain.TaskState{}
	}

	logging.Debugf("loaded snapshot %s (%d tasks)", path, len(snapshot.Tasks))
	return &snapshot, nil
}

// Save atomically replaces the snapshot file for snapshot.Date.
func (s *Store) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snapshot == nil {
		return errors.NewInvalidInputError("snapshot", nil, "snapshot is required")
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errors.NewStorageError("encode snapshot", err)
	}

	path := s.Path(snapshot.Date)
	if err := s.writeAtomic(path, data); err != nil {
		return errors.NewStorageError("write snapshot", err).WithContext("path", path)
	}

	logging.Debugf("saved snapshot %s", path)
	return nil
}

// ListDates returns the dates that have a snapshot file, oldest first.
// A missing directory yields an empty list.
func (s *Store) ListDates(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, errors.NewStorageError("list snapshots", err).WithContext("dir", s.dir)
	}

	dates := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		date := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		if _, err := domain.ParseDate(date); err != nil {
			continue
		}
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

// Close is a no-op; the store holds no open handles.
func (s *Store) Close() error {
	return nil
}

func (s *Store) writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(s.dir, s.dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
