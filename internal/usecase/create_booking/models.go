package create_booking

import (
	"time"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// Request модель запроса на создание бронирования
// Либо указывается ClientID существующего клиента, либо полные данные
// нового клиента (FullName, Address, Phone)
type Request struct {
	ClientID *int64

	FullName string
	Address  string
	Phone    string

	PetName      string
	PetBreed     string
	PetWeightLbs int
	PetAgeYears  int
	SpecialNeeds *string

	ServiceIDs []int64

	// Запрошенное окно (опционально; интервал может быть назначен позже)
	Scheduled *domain.Interval
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       int64
	ClientID int64
	Address  string

	PetName      string
	PetBreed     string
	PetWeightLbs int
	PetAgeYears  int
	SpecialNeeds *string

	Scheduled *domain.Interval

	ServiceIDs   []int64
	ServiceNames []string

	Status string

	CreatedAt time.Time
	UpdatedAt time.Time
}
