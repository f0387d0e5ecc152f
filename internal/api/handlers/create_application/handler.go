package create_application

import (
	"errors"
	"net/http"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	applicationsService "github.com/Rxdxy/grooming-booking/internal/service/applications"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	service ApplicationService
	logger  Logger
}

func NewHandler(service ApplicationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/applications
// Публичная подача заявки нового клиента: аутентификации нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateApplicationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /applications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, applicationsService.ErrInvalidInput):
			h.logger.Warn("POST /applications - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /applications - Failed to create application: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /applications - Application created: application_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
