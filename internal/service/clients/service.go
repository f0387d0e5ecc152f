package clients

import (
	"context"
	"errors"
	"fmt"

	clientRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/client"
	"github.com/Rxdxy/grooming-booking/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// List получает список клиентов; onlyActive оставляет только доверенных
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.ClientListResponse, error) {
	clients, err := s.clientRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d clients (onlyActive=%v)", len(clients), onlyActive)
	return models.FromDomainClientList(clients), nil
}

// SetActive включает или выключает доверенный статус клиента.
// Активные клиенты получают автоподтверждение новых бронирований
func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	s.logger.Info("SetActive: client=%d active=%v", id, active)

	if err := s.clientRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("SetActive: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("SetActive: failed to update client id=%d: %v", id, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	return nil
}
