package schedule_booking

import (
	"context"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetActiveIntervals(ctx context.Context, excludeID *int64) ([]domain.ActiveInterval, error)
	UpdateSchedule(ctx context.Context, id int64, interval domain.Interval) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
