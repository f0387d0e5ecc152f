package create_booking

import (
	"time"

	"github.com/Rxdxy/grooming-booking/internal/api/handlers"
	"github.com/Rxdxy/grooming-booking/internal/domain"
	createBooking "github.com/Rxdxy/grooming-booking/internal/usecase/create_booking"
)

// ScheduledWindow запрошенное окно визита в теле запроса.
// Значения без зоны интерпретируются во временной зоне бизнеса
type ScheduledWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID *int64 `json:"clientId,omitempty"`

	FullName string `json:"fullName,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`

	PetName      string  `json:"petName"`
	PetBreed     string  `json:"petBreed"`
	PetWeightLbs int     `json:"petWeightLbs"`
	PetAgeYears  int     `json:"petAgeYears"`
	SpecialNeeds *string `json:"specialNeeds,omitempty"`

	ServiceIDs []int64 `json:"serviceIds"`

	Scheduled *ScheduledWindow `json:"scheduled,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID       int64  `json:"id"`
	ClientID int64  `json:"clientId"`
	Address  string `json:"address"`

	PetName      string  `json:"petName"`
	PetBreed     string  `json:"petBreed"`
	PetWeightLbs int     `json:"petWeightLbs"`
	PetAgeYears  int     `json:"petAgeYears"`
	SpecialNeeds *string `json:"specialNeeds,omitempty"`

	Scheduled *ScheduledWindow `json:"scheduled,omitempty"`

	ServiceIDs   []int64  `json:"serviceIds"`
	ServiceNames []string `json:"serviceNames"`

	Status string `json:"status"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(loc *time.Location) (*createBooking.Request, error) {
	req := &createBooking.Request{
		ClientID:     r.ClientID,
		FullName:     r.FullName,
		Address:      r.Address,
		Phone:        r.Phone,
		PetName:      r.PetName,
		PetBreed:     r.PetBreed,
		PetWeightLbs: r.PetWeightLbs,
		PetAgeYears:  r.PetAgeYears,
		SpecialNeeds: r.SpecialNeeds,
		ServiceIDs:   r.ServiceIDs,
	}

	if r.Scheduled != nil {
		start, err := handlers.ParseTimeParam(r.Scheduled.Start, loc)
		if err != nil {
			return nil, err
		}
		end, err := handlers.ParseTimeParam(r.Scheduled.End, loc)
		if err != nil {
			return nil, err
		}
		req.Scheduled = &domain.Interval{Start: start, End: end}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:           resp.ID,
		ClientID:     resp.ClientID,
		Address:      resp.Address,
		PetName:      resp.PetName,
		PetBreed:     resp.PetBreed,
		PetWeightLbs: resp.PetWeightLbs,
		PetAgeYears:  resp.PetAgeYears,
		SpecialNeeds: resp.SpecialNeeds,
		ServiceIDs:   resp.ServiceIDs,
		ServiceNames: resp.ServiceNames,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.Scheduled != nil {
		out.Scheduled = &ScheduledWindow{
			Start: resp.Scheduled.Start.Format(time.RFC3339),
			End:   resp.Scheduled.End.Format(time.RFC3339),
		}
	}

	return out
}
