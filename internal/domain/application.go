package domain

import "time"

// ApplicationStatus represents the review status of a new-client application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationDeclined ApplicationStatus = "declined"
)

// Valid reports whether the status is one of the known application statuses
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationDeclined:
		return true
	}
	return false
}

// Application represents a new-client application submitted through the
// public intake form. Approving an application creates an active Client
type Application struct {
	ID int64

	FullName string
	Address  string
	ZipCode  string
	Phone    string

	PetName      string
	PetBreed     string
	PetWeightLbs *int
	PetAgeYears  *int

	Notes string

	Status ApplicationStatus

	CreatedAt time.Time
}

// IsPending returns true if the application still awaits staff review
func (a *Application) IsPending() bool {
	return a.Status == ApplicationPending
}
