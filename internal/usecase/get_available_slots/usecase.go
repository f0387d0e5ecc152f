package get_available_slots

import (
	"context"
	"fmt"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// UseCase use case получения свободных слотов для записи
// Чистый read-path: блокировок нет, допустимо чтение слегка устаревших
// данных — авторитетная проверка конфликтов выполняется при записи
type UseCase struct {
	bookingRepo BookingRepository
	schedule    domain.Schedule
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, schedule domain.Schedule, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		schedule:    schedule,
		logger:      logger,
	}
}

// Execute выполняет генерацию свободных слотов в диапазоне [Start, End)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	start := req.Start.In(uc.schedule.Location)
	end := req.End.In(uc.schedule.Location)

	// Вырожденный диапазон — пустой результат, не ошибка
	if !end.After(start) {
		uc.logger.Warn("GetAvailableSlots: degenerate range [%s, %s)", start, end)
		return &Response{Start: start, End: end, Slots: []domain.Interval{}}, nil
	}

	busy, err := uc.bookingRepo.GetActiveIntervalsInRange(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to load busy intervals: %v", ErrInternal, err)
	}

	slots := generateSlots(start, end, busy, uc.schedule)

	uc.logger.Info("GetAvailableSlots: %d slots in [%s, %s), %d busy intervals",
		len(slots), start.Format("2006-01-02 15:04"), end.Format("2006-01-02 15:04"), len(busy))

	return &Response{Start: start, End: end, Slots: slots}, nil
}
