package schedule_booking

import (
	"time"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	scheduleBooking "github.com/Rxdxy/grooming-booking/internal/usecase/schedule_booking"
)

// ScheduleBookingRequest HTTP request model
// Значения без зоны интерпретируются во временной зоне бизнеса
type ScheduleBookingRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64    `json:"id"`
	ClientID     int64    `json:"clientId"`
	Address      string   `json:"address"`
	PetName      string   `json:"petName"`
	Start        string   `json:"start"`
	End          string   `json:"end"`
	Status       string   `json:"status"`
	ServiceNames []string `json:"serviceNames"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleBookingRequest) ToUseCaseRequest(bookingID int64, loc *time.Location) (*scheduleBooking.Request, error) {
	start, err := handlers.ParseTimeParam(r.Start, loc)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseTimeParam(r.End, loc)
	if err != nil {
		return nil, err
	}

	return &scheduleBooking.Request{
		BookingID: bookingID,
		Start:     start,
		End:       end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scheduleBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		ClientID:     resp.ClientID,
		Address:      resp.Address,
		PetName:      resp.PetName,
		Start:        resp.Scheduled.Start.Format(time.RFC3339),
		End:          resp.Scheduled.End.Format(time.RFC3339),
		Status:       resp.Status,
		ServiceNames: resp.ServiceNames,
	}
}
