package domain

import "time"

// Schedule describes the single business calendar the crew operates on:
// daily working hours, slot size and the business timezone
type Schedule struct {
	SlotDurationMinutes int
	OpenHour            int // Local hour the business opens, 0-23
	CloseHour           int // Local hour the business closes, 0-23
	Location            *time.Location
}

// SlotDuration returns the slot size as a time.Duration
func (s Schedule) SlotDuration() time.Duration {
	return time.Duration(s.SlotDurationMinutes) * time.Minute
}

// DayWindow returns the business window [open, close) for the day
// containing d, in the business timezone. A day with CloseHour <= OpenHour
// has an empty window
func (s Schedule) DayWindow(d time.Time) Interval {
	d = d.In(s.Location)
	open := time.Date(d.Year(), d.Month(), d.Day(), s.OpenHour, 0, 0, 0, s.Location)
	close := time.Date(d.Year(), d.Month(), d.Day(), s.CloseHour, 0, 0, 0, s.Location)
	return Interval{Start: open, End: close}
}
