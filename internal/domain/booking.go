package domain

import "time"

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusNew       BookingStatus = "new"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusDeclined  BookingStatus = "declined"
)

// Valid reports whether the status is one of the known booking statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusNew, StatusConfirmed, StatusCompleted, StatusDeclined:
		return true
	}
	return false
}

// Booking represents a mobile grooming booking request
// A booking may exist without a scheduled interval (intake before scheduling)
type Booking struct {
	ID       int64
	ClientID int64
	Address  string

	PetName      string
	PetBreed     string
	PetWeightLbs int
	PetAgeYears  int
	SpecialNeeds *string

	// Scheduled is nil until staff assign a time window
	Scheduled *Interval

	// Selected grooming services (denormalized names for staff views)
	ServiceIDs   []int64
	ServiceNames []string

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts toward conflict and
// availability calculations
func (b *Booking) IsActive() bool {
	return b.Status == StatusNew || b.Status == StatusConfirmed
}

// IsScheduled returns true if the booking has a time window assigned
func (b *Booking) IsScheduled() bool {
	return b.Scheduled != nil
}

// CanTransitionTo reports whether the status transition is allowed:
// new -> confirmed -> completed, with declined reachable from new or
// confirmed. completed and declined are terminal
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusNew:
		return next == StatusConfirmed || next == StatusDeclined
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusDeclined
	default:
		return false
	}
}

// BookingsFilter filter for listing bookings
type BookingsFilter struct {
	ClientID        *int64         // Optional client filter
	From            *time.Time     // Scheduled interval intersects [From, To) when both set
	To              *time.Time
	Status          *BookingStatus // Optional status filter
	IncludeInactive bool           // Include declined/completed bookings
	OnlyScheduled   bool           // Only bookings with an assigned interval
}
