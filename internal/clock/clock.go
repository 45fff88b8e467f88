package clock

import "time"

// Clock abstracts time.Now for deterministic tests.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock in local time.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant. Set moves it.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

func (f *Fixed) Set(t time.Time) {
	f.T = t
}

func (f *Fixed) Advance(d time.Duration) {
	f.T = f.T.Add(d)
}
