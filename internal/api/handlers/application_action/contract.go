package application_action

import (
	"context"

	"github.com/Rxdxy/grooming-booking/internal/service/applications/models"
)

type ApplicationService interface {
	Approve(ctx context.Context, id int64) (*models.ApproveResponse, error)
	Decline(ctx context.Context, id int64) (*models.ApplicationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
