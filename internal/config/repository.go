package config

import (
	"context"
	"fmt"
	"os"

	"daybelt/internal/errors"
	"daybelt/internal/repository"
	"daybelt/internal/repository/jsonfile"
	"daybelt/internal/repository/sqlite"
)

// CreateRepository opens the snapshot store selected by the configuration
func CreateRepository(ctx context.Context, config *Config) (repository.SnapshotRepository, error) {
	perm := os.FileMode(config.Storage.DirPermissions)

	switch config.Storage.Backend {
	case BackendJSON, "":
		return jsonfile.New(config.Storage.Dir, perm), nil
	case BackendSQLite:
		if err := os.MkdirAll(config.Storage.Dir, perm); err != nil {
			return nil, errors.NewStorageError("create data directory", err)
		}
		repo, err := sqlite.New(ctx, config.GetDatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, errors.NewInvalidInputError("storage.backend", config.Storage.Backend, "must be json or sqlite")
	}
}
