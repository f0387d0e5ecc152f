package list_clients

import (
	"context"

	"github.com/Rxdxy/grooming-booking/internal/service/clients/models"
)

type ClientService interface {
	List(ctx context.Context, onlyActive bool) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
