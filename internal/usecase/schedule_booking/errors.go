package schedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("schedule_booking: booking not found")

	// ErrBookingInactive возвращается при попытке назначить время
	// отклонённому или завершённому бронированию
	ErrBookingInactive = errors.New("schedule_booking: booking is not active")

	// ErrInvalidInterval возвращается, когда конец интервала не позже начала
	ErrInvalidInterval = errors.New("schedule_booking: interval end must be after start")

	// ErrConflict возвращается, когда интервал пересекается с активным бронированием
	ErrConflict = errors.New("schedule_booking: interval overlaps an active booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("schedule_booking: internal error")
)
