package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybelt/internal/domain"
	"daybelt/internal/errors"
	"daybelt/internal/repository/jsonfile"
	"daybelt/internal/repository/sqlite"
)

func TestCreateRepository(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		check   func(t *testing.T, repo interface{})
	}{
		{"json", BackendJSON, func(t *testing.T, repo interface{}) {
			assert.IsType(t, &jsonfile.Store{}, repo)
		}},
		{"sqlite", BackendSQLite, func(t *testing.T, repo interface{}) {
			assert.IsType(t, &sqlite.SQLiteRepository{}, repo)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Storage.Dir = filepath.Join(t.TempDir(), "data")
			cfg.Storage.Backend = tt.backend

			repo, err := CreateRepository(context.Background(), cfg)
			require.NoError(t, err)
			defer repo.Close()
			tt.check(t, repo)

			ctx := context.Background()
			snap := domain.NewSnapshot("2024-05-01", []domain.TaskState{
				{Task: domain.NewTask("9:00-9:30", "Walk"), Done: true},
			})
			require.NoError(t, repo.Save(ctx, snap))
			got, err := repo.Load(ctx, "2024-05-01")
			require.NoError(t, err)
			assert.Equal(t, snap, got)
		})
	}
}

func TestCreateRepository_UnknownBackend(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = t.TempDir()
	cfg.Storage.Backend = "csv"

	_, err := CreateRepository(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}
