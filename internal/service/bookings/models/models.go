package models

import (
	"errors"
	"time"

	"github.com/Rxdxy/grooming-booking/internal/domain"
	"github.com/Rxdxy/grooming-booking/pkg/ptr"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	ClientID        *int64
	From            *time.Time // Назначенный интервал пересекает [From, To)
	To              *time.Time
	Status          *string
	IncludeInactive bool
	OnlyScheduled   bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		ClientID:        r.ClientID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
		OnlyScheduled:   r.OnlyScheduled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// IntervalResponse назначенное окно бронирования
type IntervalResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID       int64  `json:"id"`
	ClientID int64  `json:"clientId"`
	Address  string `json:"address"`

	PetName      string  `json:"petName"`
	PetBreed     string  `json:"petBreed"`
	PetWeightLbs int     `json:"petWeightLbs"`
	PetAgeYears  int     `json:"petAgeYears"`
	SpecialNeeds *string `json:"specialNeeds,omitempty"`

	Scheduled *IntervalResponse `json:"scheduled,omitempty"`

	ServiceIDs   []int64  `json:"serviceIds"`
	ServiceNames []string `json:"serviceNames"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// EventResponse элемент календарной ленты.
// Публичная лента содержит только анонимные занятые окна;
// лента персонала дополнительно несёт ID, статус и адрес выезда
type EventResponse struct {
	ID      *int64    `json:"id,omitempty"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Status  string    `json:"status,omitempty"`
	Address string    `json:"address,omitempty"`
}

// EventListResponse ответ с календарной лентой
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// BusyEventsFromIntervals строит анонимную публичную ленту занятых окон.
// Временные метки приводятся к бизнес-таймзоне салона
func BusyEventsFromIntervals(intervals []domain.ActiveInterval, loc *time.Location) *EventListResponse {
	events := make([]EventResponse, 0, len(intervals))
	for _, ai := range intervals {
		window := ai.Interval.In(loc)
		events = append(events, EventResponse{
			Title: "Busy",
			Start: window.Start,
			End:   window.End,
		})
	}
	return &EventListResponse{Events: events}
}

// CalendarEventsFromBookings строит ленту персонала из назначенных бронирований.
// Временные метки приводятся к бизнес-таймзоне салона
func CalendarEventsFromBookings(bookings []*domain.Booking, loc *time.Location) *EventListResponse {
	events := make([]EventResponse, 0, len(bookings))
	for _, b := range bookings {
		if b.Scheduled == nil {
			continue
		}
		window := b.Scheduled.In(loc)
		events = append(events, EventResponse{
			ID:      ptr.Ptr(b.ID),
			Title:   b.PetName + " (" + b.PetBreed + ")",
			Start:   window.Start,
			End:     window.End,
			Status:  string(b.Status),
			Address: b.Address,
		})
	}
	return &EventListResponse{Events: events}
}

// FromDomainBooking конвертирует доменную модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:           b.ID,
		ClientID:     b.ClientID,
		Address:      b.Address,
		PetName:      b.PetName,
		PetBreed:     b.PetBreed,
		PetWeightLbs: b.PetWeightLbs,
		PetAgeYears:  b.PetAgeYears,
		SpecialNeeds: b.SpecialNeeds,
		ServiceIDs:   b.ServiceIDs,
		ServiceNames: b.ServiceNames,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}

	if b.Scheduled != nil {
		resp.Scheduled = &IntervalResponse{Start: b.Scheduled.Start, End: b.Scheduled.End}
	}

	return resp
}

// FromDomainBookingList конвертирует список доменных моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
