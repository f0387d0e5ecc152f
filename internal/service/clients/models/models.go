package models

import (
	"time"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// ClientResponse клиент в ответе API
type ClientResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse список клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// FromDomainClient конвертирует доменную модель в ответ API
func FromDomainClient(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		FullName:  c.FullName,
		Address:   c.Address,
		Phone:     c.Phone,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainClientList конвертирует список доменных моделей в ответ API
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
		Total:   len(clients),
	}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, *FromDomainClient(c))
	}
	return resp
}
