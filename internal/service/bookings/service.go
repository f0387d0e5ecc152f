package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rxdxy/grooming-booking/internal/domain"
	bookingRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/booking"
	"github.com/Rxdxy/grooming-booking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение и переходы статусов
type Service struct {
	bookingRepo BookingRepository
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// location — бизнес-таймзона салона, в неё приводятся метки календарных лент
func NewService(bookingRepo BookingRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		location:    location,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
// По умолчанию только активные; отклонённые и завершённые включаются
// через IncludeInactive
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// BusyEvents отдаёт публичную ленту занятых окон в диапазоне [from, to).
// Окна анонимны: по ним нельзя восстановить клиента или питомца
func (s *Service) BusyEvents(ctx context.Context, from, to time.Time) (*models.EventListResponse, error) {
	intervals, err := s.bookingRepo.GetActiveIntervalsInRange(ctx, from, to)
	if err != nil {
		s.logger.Error("BusyEvents: repository error: %v", err)
		return nil, fmt.Errorf("%w: BusyEvents - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BusyEvents: %d busy intervals in range", len(intervals))
	return models.BusyEventsFromIntervals(intervals, s.location), nil
}

// CalendarEvents отдаёт ленту персонала: назначенные активные бронирования
// в диапазоне [from, to) с ID, статусом и адресом выезда
func (s *Service) CalendarEvents(ctx context.Context, from, to time.Time) (*models.EventListResponse, error) {
	filter := domain.BookingsFilter{
		From:          &from,
		To:            &to,
		OnlyScheduled: true,
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("CalendarEvents: repository error: %v", err)
		return nil, fmt.Errorf("%w: CalendarEvents - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CalendarEvents: %d scheduled bookings in range", len(bookings))
	return models.CalendarEventsFromBookings(bookings, s.location), nil
}

// UpdateStatus переводит бронирование в новый статус по правилам жизненного
// цикла: new -> confirmed -> completed, declined из new или confirmed.
// Перевод в declined/completed выводит бронирование из активного множества
// (soft-delete); физического удаления нет
func (s *Service) UpdateStatus(ctx context.Context, id int64, statusStr string) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking=%d -> %s", id, statusStr)

	status, err := models.ToDomainBookingStatus(statusStr)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for booking=%d", statusStr, id)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking=%d",
			booking.Status, status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("UpdateStatus: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = status

	s.logger.Info("UpdateStatus: booking=%d is now %s", id, status)
	return models.FromDomainBooking(booking), nil
}
