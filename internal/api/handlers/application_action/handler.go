package application_action

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	applicationsService "github.com/Rxdxy/grooming-booking/internal/service/applications"
)

const (
	msgInvalidApplicationID = "invalid application ID"
	msgUnknownAction        = "unknown action"
	msgApplicationNotFound  = "application not found"
	msgAlreadyReviewed      = "application has already been reviewed"
)

const (
	actionApprove = "approve"
	actionDecline = "decline"
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

// Handle PATCH /api/v1/applications/{applicationId}/{action}
// Поддерживаемые действия: approve (создаёт активного клиента), decline.
// Решение по заявке принимается один раз
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	applicationID, err := strconv.ParseInt(vars["applicationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /applications/{id}/{action} - Invalid application ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApplicationID)
		return
	}

	action := vars["action"]

	var result interface{}
	switch action {
	case actionApprove:
		result, err = h.service.Approve(r.Context(), applicationID)
	case actionDecline:
		result, err = h.service.Decline(r.Context(), applicationID)
	default:
		h.logger.Warn("PATCH /applications/{id}/{action} - Unknown action: %q", action)
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, applicationsService.ErrApplicationNotFound):
			h.logger.Warn("PATCH /applications/{id}/{action} - Application not found: application_id=%d", applicationID)
			handlers.RespondNotFound(w, msgApplicationNotFound)

		case errors.Is(err, applicationsService.ErrAlreadyReviewed):
			h.logger.Warn("PATCH /applications/{id}/{action} - Already reviewed: application_id=%d", applicationID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgAlreadyReviewed)

		default:
			h.logger.Error("PATCH /applications/{id}/{action} - Failed: application_id=%d, action=%s, error=%v",
				applicationID, action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /applications/{id}/{action} - Application %s: application_id=%d", action, applicationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
