package utils

import (
	"time"
)

const (
	LayoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04"
)

// NowUTC returns current time in UTC, truncated to the second as stored in the database.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FormatDate formats t as YYYY-MM-DD in UTC, or "-" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(LayoutDate)
}

// FormatDateTime formats t as "YYYY-MM-DD HH:MM" in UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(layoutDateTime)
}
