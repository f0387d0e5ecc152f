package availability_slots

import (
	"time"

	getAvailableSlots "github.com/Rxdxy/grooming-booking/internal/usecase/get_available_slots"
)

// SlotResponse один свободный слот [start, end) в формате событий
// календарного виджета
type SlotResponse struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{Title: "Available", Start: s.Start, End: s.End})
	}
	return &SlotsResponse{Slots: slots}
}

// EmptyResponse пустая лента слотов
func EmptyResponse() *SlotsResponse {
	return &SlotsResponse{Slots: []SlotResponse{}}
}
