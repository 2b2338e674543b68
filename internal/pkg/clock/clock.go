// Package clock abstracts the current time so services depending on
// wall-clock rules can be tested deterministically.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the real time.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Test use only.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time {
	return f.Time
}
