package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybelt/internal/errors"
)

func TestHandleDatabaseError(t *testing.T) {
	originalErr := stderrors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	require.Error(t, result)
	assert.True(t, errors.IsErrorType(result, errors.ErrorTypeStorage))
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
}

func TestHandleNoRowsError(t *testing.T) {
	tests := []struct {
		name           string
		inputErr       error
		expectNotFound bool
	}{
		{"ErrNoRows becomes not found", sql.ErrNoRows, true},
		{"wrapped ErrNoRows becomes not found", fmt.Errorf("scan: %w", sql.ErrNoRows), true},
		{"other error passes through", stderrors.New("some other error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HandleNoRowsError(tt.inputErr, "snapshot", "2024-05-01")
			if tt.expectNotFound {
				assert.True(t, errors.IsNotFound(result))
				assert.Contains(t, result.Error(), "2024-05-01")
			} else {
				assert.Equal(t, tt.inputErr, result)
			}
		})
	}
}

func TestExecuteInTx_RollsBackOnError(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	boom := stderrors.New("boom")
	err := ExecuteInTx(ctx, repo.db, "test", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO snapshots (date, schedule_key, updated_at) VALUES ('2024-05-01', 'k', '2024-05-01T00:00:00Z')`); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	dates, err := repo.ListDates(ctx)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestFormatTimeForDB(t *testing.T) {
	ts := sqlTime(t, "2024-06-15T14:30:00-05:00")
	assert.Equal(t, "2024-06-15T19:30:00Z", FormatTimeForDB(ts))

	parsed, err := ParseTimeFromDB(FormatTimeForDB(ts))
	require.NoError(t, err)
	assert.True(t, ts.Equal(parsed))

	_, err = ParseTimeFromDB("2024-06-15 14:30:00")
	assert.Error(t, err)
}

func TestBoolToDB(t *testing.T) {
	assert.Equal(t, 1, boolToDB(true))
	assert.Equal(t, 0, boolToDB(false))
}

func sqlTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := ParseTimeFromDB(s)
	require.NoError(t, err)
	return ts
}
