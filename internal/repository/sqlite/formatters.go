package sqlite

import (
	"time"
)

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// boolToDB stores booleans as the 0/1 integers the schema checks for
func boolToDB(b bool) int {
	if b {
		return 1
	}
	return 0
}
