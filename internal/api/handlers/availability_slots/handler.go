package availability_slots

import (
	"net/http"
	"time"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	getAvailableSlots "github.com/Rxdxy/grooming-booking/internal/usecase/get_available_slots"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/availability/slots
// Query params: start, end (ISO 8601; без зоны — во временной зоне бизнеса).
// Лента питает публичный виджет календаря: отсутствующие или кривые
// параметры дают пустой список с кодом 200, а не ошибку, чтобы виджет
// не ломался на промежуточных состояниях ввода
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startRaw := query.Get("start")
	endRaw := query.Get("end")
	if startRaw == "" || endRaw == "" {
		h.logger.Warn("GET /availability/slots - Missing start or end, returning empty feed")
		handlers.RespondJSON(w, http.StatusOK, EmptyResponse())
		return
	}

	start, err := handlers.ParseTimeParam(startRaw, h.location)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid start %q, returning empty feed", startRaw)
		handlers.RespondJSON(w, http.StatusOK, EmptyResponse())
		return
	}

	end, err := handlers.ParseTimeParam(endRaw, h.location)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid end %q, returning empty feed", endRaw)
		handlers.RespondJSON(w, http.StatusOK, EmptyResponse())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Start: start, End: end})
	if err != nil {
		h.logger.Error("GET /availability/slots - Failed to get slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/slots - Slots retrieved: count=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
