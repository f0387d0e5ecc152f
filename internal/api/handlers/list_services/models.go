package list_services

import "github.com/Rxdxy/grooming-booking/internal/domain"

// ServiceResponse услуга каталога в ответе API
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует каталог в HTTP response
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}
	return &ServiceListResponse{Services: result}
}
