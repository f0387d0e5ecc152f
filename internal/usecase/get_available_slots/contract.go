package get_available_slots

import (
	"context"
	"time"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveIntervalsInRange получает интервалы активных бронирований,
	// пересекающие полуоткрытый диапазон [from, to)
	GetActiveIntervalsInRange(ctx context.Context, from, to time.Time) ([]domain.ActiveInterval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
