package schedule_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	scheduleBooking "github.com/Rxdxy/grooming-booking/internal/usecase/schedule_booking"
)

const (
	msgInvalidBookingID   = "invalid booking ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimes       = "invalid start or end, expected ISO 8601 timestamps"
	msgBookingNotFound    = "booking not found"
	msgBookingInactive    = "booking is declined or completed and cannot be scheduled"
	msgInvalidInterval    = "end must be after start"
	msgConflict           = "time window overlaps an existing booking"
)

type Handler struct {
	useCase  ScheduleBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase ScheduleBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/schedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ScheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, h.location)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/schedule - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimes)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/schedule - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, scheduleBooking.ErrBookingInactive):
			h.logger.Warn("PATCH /bookings/{id}/schedule - Booking inactive: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBookingInactive)

		case errors.Is(err, scheduleBooking.ErrInvalidInterval):
			h.logger.Warn("PATCH /bookings/{id}/schedule - Invalid interval: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, scheduleBooking.ErrConflict):
			h.logger.Warn("PATCH /bookings/{id}/schedule - Conflict: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		case errors.Is(err, scheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/schedule - Invalid input: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("PATCH /bookings/{id}/schedule - Failed to schedule: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /bookings/{id}/schedule - Booking scheduled: booking_id=%d, start=%s",
		bookingID, result.Scheduled.Start.Format(time.RFC3339))
	handlers.RespondJSON(w, http.StatusOK, response)
}
