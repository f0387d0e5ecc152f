package domain

import "time"

// Client represents a grooming client on file
type Client struct {
	ID       int64
	FullName string
	Address  string
	Phone    string

	// IsActive marks trusted clients whose new bookings are confirmed
	// automatically instead of waiting for staff review
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
