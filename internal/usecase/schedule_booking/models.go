package schedule_booking

import (
	"time"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// Request модель запроса на назначение или перенос времени бронирования
type Request struct {
	BookingID int64
	Start     time.Time // Начало окна [Start, End)
	End       time.Time // Конец окна (не входит в интервал)
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID           int64
	ClientID     int64
	Address      string
	PetName      string
	Scheduled    domain.Interval
	Status       string
	ServiceNames []string
}
