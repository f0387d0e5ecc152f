package create_booking

import (
	"fmt"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Каноничная схема: обязательные поля либо присутствуют, либо запрос
// отклоняется сразу — никаких тихих дефолтов
func validateRequest(req *Request) error {
	if req.ClientID != nil && *req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ClientID == nil {
		if req.FullName == "" {
			return fmt.Errorf("%w: fullName is required for a new client", ErrInvalidInput)
		}
		if req.Phone == "" {
			return fmt.Errorf("%w: phone is required for a new client", ErrInvalidInput)
		}
	}

	if req.PetName == "" {
		return fmt.Errorf("%w: petName is required", ErrInvalidInput)
	}
	if req.PetBreed == "" {
		return fmt.Errorf("%w: petBreed is required", ErrInvalidInput)
	}
	if req.PetWeightLbs <= 0 {
		return fmt.Errorf("%w: petWeightLbs must be positive", ErrInvalidInput)
	}
	if req.PetAgeYears < 0 {
		return fmt.Errorf("%w: petAgeYears must not be negative", ErrInvalidInput)
	}

	if req.SpecialNeeds != nil && len(*req.SpecialNeeds) > domain.MaxSpecialNeedsLength {
		return fmt.Errorf("%w: specialNeeds is too long", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	if req.Scheduled != nil {
		if err := req.Scheduled.Validate(); err != nil {
			return ErrInvalidInterval
		}
	}

	return nil
}
