package clock

import "time"

// Clock is the time source for attendance rules. Services read it once per
// request and reuse the value for every comparison.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// New returns a Clock reading the system time in loc.
func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Func adapts a function to a Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
