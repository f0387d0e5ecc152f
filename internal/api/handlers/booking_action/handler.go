package booking_action

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	bookingsService "github.com/Rxdxy/grooming-booking/internal/service/bookings"
)

const (
	msgInvalidBookingID  = "invalid booking ID"
	msgUnknownAction     = "unknown action"
	msgBookingNotFound   = "booking not found"
	msgInvalidTransition = "status transition is not allowed"
)

// actionStatuses соответствие URL-действия целевому статусу
var actionStatuses = map[string]string{
	"confirm":  "confirmed",
	"decline":  "declined",
	"complete": "completed",
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/{action}
// Поддерживаемые действия: confirm, decline, complete.
// Decline и complete выводят бронирование из активного множества,
// освобождая его окно для других бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/{action} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	action := vars["action"]
	status, ok := actionStatuses[action]
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/{action} - Unknown action: %q", action)
		handlers.RespondBadRequest(w, msgUnknownAction)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/{action} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/{action} - Invalid transition: booking_id=%d, action=%s, error=%v",
				bookingID, action, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidTransition)

		case errors.Is(err, bookingsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /bookings/{id}/{action} - Invalid status: booking_id=%d, action=%s", bookingID, action)
			handlers.RespondBadRequest(w, msgUnknownAction)

		default:
			h.logger.Error("PATCH /bookings/{id}/{action} - Failed: booking_id=%d, action=%s, error=%v",
				bookingID, action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/{action} - Booking updated: booking_id=%d, status=%s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
