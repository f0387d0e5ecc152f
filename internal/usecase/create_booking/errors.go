package create_booking

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrServiceNotFound возвращается, когда услуга из запроса не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidInterval возвращается, когда конец интервала не позже начала
	ErrInvalidInterval = errors.New("create_booking: interval end must be after start")

	// ErrConflict возвращается, когда запрошенный интервал пересекается с активным бронированием
	ErrConflict = errors.New("create_booking: interval overlaps an active booking")

	// ErrMissingAddress возвращается, когда адрес не указан и не может быть
	// взят из карточки клиента
	ErrMissingAddress = errors.New("create_booking: address is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
