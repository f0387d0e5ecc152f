package schedule_booking

import (
	"context"

	scheduleBooking "github.com/Rxdxy/grooming-booking/internal/usecase/schedule_booking"
)

type ScheduleBookingUseCase interface {
	Execute(ctx context.Context, req *scheduleBooking.Request) (*scheduleBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
