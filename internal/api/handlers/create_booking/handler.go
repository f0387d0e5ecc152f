package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	createBooking "github.com/Rxdxy/grooming-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidScheduled   = "invalid scheduled window, expected ISO 8601 timestamps"
	msgClientNotFound     = "client not found"
	msgServiceNotFound    = "service not found"
	msgConflict           = "requested time window overlaps an existing booking"
	msgInvalidInterval    = "scheduled end must be after start"
	msgMissingAddress     = "address is required for a new client"
	msgInvalidInput       = "invalid input data"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом окна визита)
	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse scheduled window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduled)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: %v", err)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrConflict):
			h.logger.Warn("POST /bookings - Scheduling conflict: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrMissingAddress):
			h.logger.Warn("POST /bookings - Missing address: %v", err)
			handlers.RespondBadRequest(w, msgMissingAddress)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, client_id=%d, status=%s",
		result.ID, result.ClientID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
