package domain

import "fmt"

// ActiveInterval is the scheduled window of one active booking,
// as loaded for conflict checking.
type ActiveInterval struct {
	BookingID int64
	Interval  Interval
}

// ConflictError reports which existing booking the candidate interval collides with
type ConflictError struct {
	BookingID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("interval conflicts with booking id=%d", e.BookingID)
}

// CheckConflict decides whether candidate can be scheduled alongside the
// given active intervals. excludeID, when set, skips that booking so a
// reschedule does not conflict with its own previous slot.
//
// The check is pure: callers are responsible for loading the active set
// under whatever isolation they need.
func CheckConflict(candidate Interval, excludeID *int64, active []ActiveInterval) error {
	if err := candidate.Validate(); err != nil {
		return err
	}

	for _, ai := range active {
		if excludeID != nil && ai.BookingID == *excludeID {
			continue
		}
		if candidate.Overlaps(ai.Interval) {
			return &ConflictError{BookingID: ai.BookingID}
		}
	}

	return nil
}
