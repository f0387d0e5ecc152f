package create_application

import (
	"github.com/Rxdxy/grooming-booking/internal/service/applications/models"
)

// CreateApplicationRequest HTTP request model публичной формы заявки
type CreateApplicationRequest struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	ZipCode  string `json:"zipCode,omitempty"`
	Phone    string `json:"phone"`

	PetName      string `json:"petName"`
	PetBreed     string `json:"petBreed"`
	PetWeightLbs *int   `json:"petWeightLbs,omitempty"`
	PetAgeYears  *int   `json:"petAgeYears,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateApplicationRequest) ToServiceRequest() *models.CreateApplicationRequest {
	return &models.CreateApplicationRequest{
		FullName:     r.FullName,
		Address:      r.Address,
		ZipCode:      r.ZipCode,
		Phone:        r.Phone,
		PetName:      r.PetName,
		PetBreed:     r.PetBreed,
		PetWeightLbs: r.PetWeightLbs,
		PetAgeYears:  r.PetAgeYears,
		Notes:        r.Notes,
	}
}
