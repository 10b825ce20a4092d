package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// DefaultUTCOffsetHours is the business-local timezone offset. The business
// operates in South Africa (SAST, UTC+2, no daylight saving).
const DefaultUTCOffsetHours = 2

// Clock supplies the business-local time. Records always carry business-local
// dates regardless of where the process runs.
type Clock struct {
	loc *time.Location
}

// NewClock creates a clock fixed at the given UTC offset in hours.
func NewClock(utcOffsetHours int) Clock {
	return Clock{loc: time.FixedZone("BUSINESS", utcOffsetHours*3600)}
}

// Now returns the current business-local time.
func (c Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Today returns the current business-local calendar date.
func (c Clock) Today() civil.Date {
	return civil.DateOf(c.Now())
}

// MonthName returns the English month name for a date, e.g. "August".
func MonthName(d civil.Date) string {
	return d.Month.String()
}

// WeekOfMonth buckets a date into a week number within its month:
// days 1-7 are week 1, 8-14 week 2, and so on. Day 29 onward yields a
// fifth "week"; callers must not clamp it.
func WeekOfMonth(d civil.Date) int {
	return ((d.Day - 1) / 7) + 1
}
