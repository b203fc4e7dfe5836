package sqlite

import (
	"database/sql"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}
	if len(dest) != len(ts.data) {
		return stderrors.New("mismatch in number of destinations")
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *int:
			*v = ts.data[i].(int)
		case *int64:
			*v = ts.data[i].(int64)
		case *string:
			*v = ts.data[i].(string)
		}
	}
	return nil
}

// TestRows feeds a fixed set of scanners through the Rows interface
type TestRows struct {
	rows []*TestScanner
	pos  int
	err  error
}

func (tr *TestRows) Next() bool {
	if tr.pos >= len(tr.rows) {
		return false
	}
	tr.pos++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return tr.rows[tr.pos-1].Scan(dest...)
}

func (tr *TestRows) Err() error { return tr.err }

func TestScanSnapshot(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *snapshotRow
		expectError bool
	}{
		{
			name:    "valid row",
			scanner: &TestScanner{data: []interface{}{"2024-05-01", "abc", "2024-05-01T08:00:00Z"}},
			expected: &snapshotRow{
				Date:        "2024-05-01",
				ScheduleKey: "abc",
				UpdatedAt:   time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
			},
		},
		{
			name:        "bad timestamp",
			scanner:     &TestScanner{data: []interface{}{"2024-05-01", "abc", "noon"}},
			expectError: true,
		},
		{
			name:        "no rows",
			scanner:     &TestScanner{err: sql.ErrNoRows},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanSnapshot(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Date, got.Date)
			assert.Equal(t, tt.expected.ScheduleKey, got.ScheduleKey)
			assert.True(t, tt.expected.UpdatedAt.Equal(got.UpdatedAt))
		})
	}
}

func TestScanTask(t *testing.T) {
	tests := []struct {
		name        string
		data        []interface{}
		expected    *taskRow
		expectError bool
	}{
		{"done", []interface{}{0, "9:00-9:30", "Walk", int64(1)}, &taskRow{0, "9:00-9:30", "Walk", true}, false},
		{"not done", []interface{}{2, "9:30-10:00", "Read", int64(0)}, &taskRow{2, "9:30-10:00", "Read", false}, false},
		{"bad flag", []interface{}{0, "9:00-9:30", "Walk", int64(7)}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanTask(&TestScanner{data: tt.data})
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestScanTasks(t *testing.T) {
	rows := &TestRows{rows: []*TestScanner{
		{data: []interface{}{0, "9:00-9:30", "Walk", int64(1)}},
		{data: []interface{}{1, "9:30-10:00", "Read", int64(0)}},
	}}

	got, err := ScanTasks(rows)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Read", got[1].Task)

	_, err = ScanTasks(&TestRows{err: stderrors.New("cursor failed")})
	assert.EqualError(t, err, "cursor failed")
}

func TestScanDates(t *testing.T) {
	rows := &TestRows{rows: []*TestScanner{
		{data: []interface{}{"2024-05-01"}},
		{data: []interface{}{"2024-05-02"}},
	}}

	got, err := ScanDates(rows)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2024-05-02", *got[1])
}
