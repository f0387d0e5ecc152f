package clients

import (
	"context"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Client, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
