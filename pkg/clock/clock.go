package clock

import "time"

// Clock supplies "now" so due-date and overdue computations stay
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant.
type Fixed struct{ T time.Time }

func (f Fixed) Now() time.Time { return f.T }

// NewFixed pins the clock at t (normalized to UTC).
func NewFixed(t time.Time) Fixed { return Fixed{T: t.UTC()} }
