package client_action

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	clientsService "github.com/Rxdxy/grooming-booking/internal/service/clients"
)

const (
	msgInvalidClientID    = "invalid client ID"
	msgInvalidRequestBody = "invalid request body"
	msgClientNotFound     = "client not found"
)

// SetActiveRequest HTTP request model
type SetActiveRequest struct {
	Active bool `json:"active"`
}

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

// Handle PATCH /api/v1/clients/{clientId}/active
// Доверенный статус: активные клиенты получают автоподтверждение
// новых бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /clients/{id}/active - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /clients/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetActive(r.Context(), clientID, req.Active); err != nil {
		switch {
		case errors.Is(err, clientsService.ErrClientNotFound):
			h.logger.Warn("PATCH /clients/{id}/active - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("PATCH /clients/{id}/active - Failed: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /clients/{id}/active - Client updated: client_id=%d, active=%v", clientID, req.Active)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"active": req.Active})
}
