package models

import "time"

// Timestamp layouts used everywhere in the service. All stored timestamps are
// UTC with second precision; a "day" is always the UTC calendar date.
const (
	TimestampLayout = "2006-01-02T15:04:05Z"
	DayLayout       = "2006-01-02"
)

// FormatTimestamp renders t in the stored timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// FormatDay renders the UTC calendar date of t.
func FormatDay(t time.Time) string {
	return t.UTC().Format(DayLayout)
}
