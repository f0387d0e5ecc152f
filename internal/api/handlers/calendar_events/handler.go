package calendar_events

import (
	"net/http"
	"time"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	"github.com/Rxdxy/grooming-booking/internal/service/bookings/models"
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

// Handle GET /api/v1/calendar/events
// Лента персонала: назначенные активные бронирования с ID, статусом и
// адресом выезда. Кривые параметры дают пустую ленту с 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := handlers.ParseTimeParam(query.Get("start"), h.location)
	if err != nil {
		h.logger.Warn("GET /calendar/events - Invalid start %q, returning empty feed", query.Get("start"))
		handlers.RespondJSON(w, http.StatusOK, &models.EventListResponse{Events: []models.EventResponse{}})
		return
	}

	end, err := handlers.ParseTimeParam(query.Get("end"), h.location)
	if err != nil {
		h.logger.Warn("GET /calendar/events - Invalid end %q, returning empty feed", query.Get("end"))
		handlers.RespondJSON(w, http.StatusOK, &models.EventListResponse{Events: []models.EventResponse{}})
		return
	}

	result, err := h.service.CalendarEvents(r.Context(), start, end)
	if err != nil {
		h.logger.Error("GET /calendar/events - Failed to get calendar events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar/events - Events retrieved: count=%d", len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, result)
}
