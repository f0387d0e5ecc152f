package list_applications

import (
	"errors"
	"net/http"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	applicationsService "github.com/Rxdxy/grooming-booking/internal/service/applications"
)

const (
	msgInvalidStatus = "invalid status parameter"
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

// Handle GET /api/v1/applications
// Query params: status (pending|approved|declined, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		status = &raw
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, applicationsService.ErrInvalidStatus):
			h.logger.Warn("GET /applications - Invalid status filter: %q", r.URL.Query().Get("status"))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /applications - Failed to list applications: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /applications - Listed %d applications", len(result.Applications))
	handlers.RespondJSON(w, http.StatusOK, result)
}
