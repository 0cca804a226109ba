package utils

import "time"

// DateLayout is the wire format for all dates in the API.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current date truncated to midnight UTC.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RentalDays counts days in the inclusive range [start, end].
// A one-day rental (start == end) counts as 1.
func RentalDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
