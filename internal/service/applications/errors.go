package applications

import "errors"

var (
	// ErrApplicationNotFound возвращается, когда заявка не найдена
	ErrApplicationNotFound = errors.New("application not found")

	// ErrAlreadyReviewed возвращается при повторном решении по заявке
	ErrAlreadyReviewed = errors.New("application has already been reviewed")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid application status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
