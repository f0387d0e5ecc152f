package list_applications

import (
	"context"

	"github.com/Rxdxy/grooming-booking/internal/service/applications/models"
)

type ApplicationService interface {
	List(ctx context.Context, status *string) (*models.ApplicationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
