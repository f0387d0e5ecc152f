package domain

import (
	"errors"
	"time"
)

// ErrInvalidInterval means the interval end does not come strictly after its start
var ErrInvalidInterval = errors.New("domain: interval end must be after start")

// Interval is a half-open time range [Start, End).
// The end instant itself is excluded, so intervals that merely touch
// at a boundary do not overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Validate checks that the interval is well-formed: End strictly after Start
func (i Interval) Validate() error {
	if !i.End.After(i.Start) {
		return ErrInvalidInterval
	}
	return nil
}

// Overlaps reports whether two half-open intervals share at least one instant.
// [10:00, 11:00) and [11:00, 12:00) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Duration returns the interval length
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// In returns the interval with both endpoints converted to loc
func (i Interval) In(loc *time.Location) Interval {
	return Interval{Start: i.Start.In(loc), End: i.End.In(loc)}
}
