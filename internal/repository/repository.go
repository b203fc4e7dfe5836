// Package repository defines where daily snapshots are kept.
package repository

import (
	"context"

	"daybelt/internal/domain"
)

// SnapshotRepository stores at most one snapshot per calendar date.
//
// Load returns a not_found AppError when no snapshot exists for date and a
// corrupt_snapshot AppError when one exists but cannot be decoded. Save
// replaces any existing snapshot for the same date atomically.
type SnapshotRepository interface {
	Load(ctx context.Context, date string) (*domain.Snapshot, error)
	Save(ctx context.Context, snapshot *domain.Snapshot) error
	ListDates(ctx context.Context) ([]string, error)
	Close() error
}
