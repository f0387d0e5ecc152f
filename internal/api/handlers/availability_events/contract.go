package availability_events

import (
	"context"
	"time"

	"github.com/Rxdxy/grooming-booking/internal/service/bookings/models"
)

type BookingService interface {
	BusyEvents(ctx context.Context, from, to time.Time) (*models.EventListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
