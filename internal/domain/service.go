package domain

// Service represents an offered grooming service
type Service struct {
	ID              int64
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
}
