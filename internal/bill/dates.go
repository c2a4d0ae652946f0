package bill

import "time"

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dueDateFor places dueDay inside (year, month). A day past the end of the
// month clamps to the month's last day, it never rolls into the next month.
func dueDateFor(year int, month time.Month, dueDay int) time.Time {
	day := dueDay
	if last := daysIn(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// startOfDay truncates t to its calendar day. "Future" comparisons are
// date-only, so a bill due today still counts as future.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
