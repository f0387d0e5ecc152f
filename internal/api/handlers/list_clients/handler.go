package list_clients

import (
	"net/http"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients
// Query params: active=true оставляет только доверенных клиентов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("active") == "true"

	result, err := h.service.List(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients - Listed %d clients", len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, result)
}
