package view

import (
	"fmt"
	"time"
)

// monthOf truncates a time to the first instant of its month in UTC.
func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthLabel renders a month as "January 2026".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month, year)
}

// ShiftMonth moves a (year, month) pair by delta months, normalizing
// across year boundaries.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}

// LastMonthsRange returns the inclusive [start, end] covering the n
// calendar months ending with the current one.
func LastMonthsRange(n int) (time.Time, time.Time) {
	end := monthOf(time.Now())
	start := end.AddDate(0, -(n - 1), 0)
	return start, end
}
