package schedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rxdxy/grooming-booking/internal/domain"
	bookingRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/booking"
)

// UseCase use case назначения времени бронированию (validate-and-assign)
// Проверка конфликтов и запись интервала выполняются одной сериализуемой
// транзакцией: два конкурирующих запроса на пересекающиеся интервалы не могут
// пройти проверку одновременно (check-then-act гонка исключена)
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет назначение интервала бронированию
// Запускается на каждом назначении и каждом изменении интервала,
// включая административные правки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleBooking: booking=%d, start=%s, end=%s",
		req.BookingID, req.Start.Format(timeLogFormat), req.End.Format(timeLogFormat))

	if req.BookingID <= 0 {
		uc.logger.Warn("ScheduleBooking: invalid booking id=%d", req.BookingID)
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	candidate := domain.Interval{Start: req.Start, End: req.End}
	if err := candidate.Validate(); err != nil {
		uc.logger.Warn("ScheduleBooking: invalid interval for booking=%d: %v", req.BookingID, err)
		return nil, ErrInvalidInterval
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Отклонённым и завершённым бронированиям время не назначается
		if !booking.IsActive() {
			return ErrBookingInactive
		}

		// Активные интервалы читаются с блокировкой FOR UPDATE,
		// исключая прежнее состояние самого бронирования
		active, err := uc.bookingRepo.GetActiveIntervals(txCtx, &req.BookingID)
		if err != nil {
			return fmt.Errorf("%w: failed to load active intervals: %v", ErrInternal, err)
		}

		if err := domain.CheckConflict(candidate, &req.BookingID, active); err != nil {
			var conflict *domain.ConflictError
			if errors.As(err, &conflict) {
				uc.logger.Warn("ScheduleBooking: booking=%d conflicts with booking=%d",
					req.BookingID, conflict.BookingID)
				return fmt.Errorf("%w: booking id=%d", ErrConflict, conflict.BookingID)
			}
			return ErrInvalidInterval
		}

		if err := uc.bookingRepo.UpdateSchedule(txCtx, req.BookingID, candidate); err != nil {
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		booking.Scheduled = &candidate
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ScheduleBooking: booking=%d scheduled at [%s, %s)",
		result.ID, candidate.Start.Format(timeLogFormat), candidate.End.Format(timeLogFormat))

	return &Response{
		ID:           result.ID,
		ClientID:     result.ClientID,
		Address:      result.Address,
		PetName:      result.PetName,
		Scheduled:    candidate,
		Status:       string(result.Status),
		ServiceNames: result.ServiceNames,
	}, nil
}

const timeLogFormat = "2006-01-02T15:04:05Z07:00"
