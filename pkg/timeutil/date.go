package timeutil

import "time"

// LayoutISO is the date-tag layout.
const LayoutISO = "2006-01-02"

// DateTag returns the YYYY-MM-DD key for the UTC calendar day of t. The
// banner text is rendered in local time, so near midnight the two can name
// different days.
func DateTag(t time.Time) string {
	return t.UTC().Format(LayoutISO)
}

// ParseDateTag parses a YYYY-MM-DD tag as a UTC midnight.
func ParseDateTag(tag string) (time.Time, error) {
	return time.ParseInLocation(LayoutISO, tag, time.UTC)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// System is the wall clock.
var System Clock = ClockFunc(time.Now)

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
