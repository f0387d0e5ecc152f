package models

import (
	"time"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// CreateApplicationRequest запрос на подачу заявки нового клиента
type CreateApplicationRequest struct {
	FullName string
	Address  string
	ZipCode  string
	Phone    string

	PetName      string
	PetBreed     string
	PetWeightLbs *int
	PetAgeYears  *int

	Notes string
}

// ApplicationResponse ответ с данными заявки
type ApplicationResponse struct {
	ID int64 `json:"id"`

	FullName string `json:"fullName"`
	Address  string `json:"address"`
	ZipCode  string `json:"zipCode"`
	Phone    string `json:"phone"`

	PetName      string `json:"petName"`
	PetBreed     string `json:"petBreed"`
	PetWeightLbs *int   `json:"petWeightLbs,omitempty"`
	PetAgeYears  *int   `json:"petAgeYears,omitempty"`

	Notes string `json:"notes,omitempty"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// ApplicationListResponse ответ со списком заявок
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}

// ApproveResponse ответ на одобрение заявки: заявка и созданный клиент
type ApproveResponse struct {
	Application ApplicationResponse `json:"application"`
	ClientID    int64               `json:"clientId"`
}

// FromDomainApplication конвертирует доменную модель в response
func FromDomainApplication(a *domain.Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:           a.ID,
		FullName:     a.FullName,
		Address:      a.Address,
		ZipCode:      a.ZipCode,
		Phone:        a.Phone,
		PetName:      a.PetName,
		PetBreed:     a.PetBreed,
		PetWeightLbs: a.PetWeightLbs,
		PetAgeYears:  a.PetAgeYears,
		Notes:        a.Notes,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
	}
}

// FromDomainApplicationList конвертирует список доменных моделей в response
func FromDomainApplicationList(apps []*domain.Application) *ApplicationListResponse {
	result := make([]ApplicationResponse, len(apps))
	for i, a := range apps {
		result[i] = *FromDomainApplication(a)
	}
	return &ApplicationListResponse{Applications: result}
}
