package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	bookingsService "github.com/Rxdxy/grooming-booking/internal/service/bookings"
	"github.com/Rxdxy/grooming-booking/internal/service/bookings/models"
)

const (
	msgInvalidClientID = "invalid clientId parameter"
	msgInvalidStatus   = "invalid status parameter"
	msgInvalidTime     = "invalid time parameter, expected ISO 8601"
)

type Handler struct {
	service  BookingService
	location *time.Location
	logger   Logger
}

func NewHandler(service BookingService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: clientId, from, to, status, includeInactive, onlyScheduled.
// По умолчанию возвращаются только активные бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if raw := query.Get("clientId"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid clientId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidClientID)
			return
		}
		req.ClientID = &clientID
	}

	if raw := query.Get("from"); raw != "" {
		from, err := handlers.ParseTimeParam(raw, h.location)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := handlers.ParseTimeParam(raw, h.location)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.To = &to
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"
	req.OnlyScheduled = query.Get("onlyScheduled") == "true"

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid status filter: %q", query.Get("status"))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Listed %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
