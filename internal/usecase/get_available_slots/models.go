package get_available_slots

import (
	"time"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// Request модель запроса на получение свободных слотов
// Диапазон [Start, End) уже распарсен хендлером; политика graceful
// degradation для некорректных query-параметров применяется до usecase
type Request struct {
	Start time.Time
	End   time.Time
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Start time.Time
	End   time.Time
	Slots []domain.Interval
}
