package create_application

import (
	"context"

	"github.com/Rxdxy/grooming-booking/internal/service/applications/models"
)

type ApplicationService interface {
	Create(ctx context.Context, req *models.CreateApplicationRequest) (*models.ApplicationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
