package list_services

import (
	"net/http"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
)

type Handler struct {
	repo   ServicesRepository
	logger Logger
}

func NewHandler(repo ServicesRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/services
// Публичный каталог услуг груминга
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Listed %d services", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
