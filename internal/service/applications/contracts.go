package applications

import (
	"context"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// ApplicationRepository интерфейс репозитория заявок
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	List(ctx context.Context, status *domain.ApplicationStatus) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
