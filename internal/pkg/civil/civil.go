// Package civil provides zone-less calendar dates and wall-clock times.
//
// Shift records store a calendar date and time-of-day values separately.
// Handlers and repositories convert to these types once, and business rules
// only combine them into instants through Combine.
package civil

import (
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04:05"
	ShortTimeLayout = "15:04"

	secondsPerDay = 24 * 60 * 60
)

// Date is a calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns d shifted by n days. Month and year boundaries are normalized.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Date) Before(u Date) bool {
	return d.In(time.UTC).Before(u.In(time.UTC))
}

func (d Date) After(u Date) bool {
	return u.Before(d)
}

func (d Date) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

// DaysSince returns the number of days from u to d.
func (d Date) DaysSince(u Date) int {
	return int(d.In(time.UTC).Sub(u.In(time.UTC)).Hours() / 24)
}

// TimeOfDay is a wall-clock time with second precision.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// TimeOf returns the wall-clock time of t in t's location.
func TimeOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s}
}

// TimeOfDayFromDuration converts an offset since midnight, as stored in a
// Postgres TIME column, into a TimeOfDay. Offsets of a day or more wrap.
func TimeOfDayFromDuration(d time.Duration) TimeOfDay {
	secs := int(d/time.Second) % secondsPerDay
	if secs < 0 {
		secs += secondsPerDay
	}
	return TimeOfDay{Hour: secs / 3600, Minute: secs % 3600 / 60, Second: secs % 60}
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{ShortTimeLayout, TimeLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOf(t), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Seconds returns the number of seconds since midnight.
func (t TimeOfDay) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Duration returns the offset since midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Seconds()) * time.Second
}

func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.Seconds() < u.Seconds()
}

func (t TimeOfDay) After(u TimeOfDay) bool {
	return t.Seconds() > u.Seconds()
}

// Combine returns the instant at wall-clock t on date d in loc.
func Combine(d Date, t TimeOfDay, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, t.Second, 0, loc)
}
