package tz

import "time"

// Calendar is the location whose calendar days decide whether an event is
// still open. Event start dates are stored as UTC instants.
var Calendar = time.UTC

// Date truncates t to midnight of its calendar day in Calendar.
func Date(t time.Time) time.Time {
	t = t.In(Calendar)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Calendar)
}

// AfterToday reports whether t falls on a calendar day strictly after now's.
func AfterToday(t, now time.Time) bool {
	return Date(t).After(Date(now))
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
