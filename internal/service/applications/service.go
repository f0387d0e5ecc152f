package applications

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rxdxy/grooming-booking/internal/domain"
	applicationRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/application"
	"github.com/Rxdxy/grooming-booking/internal/service/applications/models"
)

// Service сервис заявок новых клиентов: публичная подача и решения персонала
type Service struct {
	applicationRepo ApplicationRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	applicationRepo ApplicationRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		applicationRepo: applicationRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create принимает заявку из публичной формы
func (s *Service) Create(ctx context.Context, req *models.CreateApplicationRequest) (*models.ApplicationResponse, error) {
	s.logger.Info("CreateApplication: name=%q, pet=%q", req.FullName, req.PetName)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateApplication: validation failed: %v", err)
		return nil, err
	}

	app, err := s.applicationRepo.Create(ctx, &domain.Application{
		FullName:     req.FullName,
		Address:      req.Address,
		ZipCode:      req.ZipCode,
		Phone:        req.Phone,
		PetName:      req.PetName,
		PetBreed:     req.PetBreed,
		PetWeightLbs: req.PetWeightLbs,
		PetAgeYears:  req.PetAgeYears,
		Notes:        req.Notes,
		Status:       domain.ApplicationPending,
	})
	if err != nil {
		s.logger.Error("CreateApplication: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateApplication: created application id=%d", app.ID)
	return models.FromDomainApplication(app), nil
}

// List получает заявки, опционально фильтруя по статусу
func (s *Service) List(ctx context.Context, statusStr *string) (*models.ApplicationListResponse, error) {
	var status *domain.ApplicationStatus
	if statusStr != nil {
		st := domain.ApplicationStatus(*statusStr)
		if !st.Valid() {
			s.logger.Warn("ListApplications: invalid status %q", *statusStr)
			return nil, ErrInvalidStatus
		}
		status = &st
	}

	apps, err := s.applicationRepo.List(ctx, status)
	if err != nil {
		s.logger.Error("ListApplications: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListApplications: fetched %d applications", len(apps))
	return models.FromDomainApplicationList(apps), nil
}

// Approve одобряет заявку и заводит активного клиента
// Смена статуса заявки и создание клиента выполняются одной транзакцией
func (s *Service) Approve(ctx context.Context, id int64) (*models.ApproveResponse, error) {
	s.logger.Info("ApproveApplication: id=%d", id)

	var result *models.ApproveResponse

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		app, err := s.getPending(txCtx, id)
		if err != nil {
			return err
		}

		client, err := s.clientRepo.Create(txCtx, &domain.Client{
			FullName: app.FullName,
			Address:  app.Address,
			Phone:    app.Phone,
			IsActive: true,
		})
		if err != nil {
			return fmt.Errorf("%w: Approve - failed to create client: %v", ErrInternal, err)
		}

		if err := s.applicationRepo.UpdateStatus(txCtx, id, domain.ApplicationApproved); err != nil {
			return fmt.Errorf("%w: Approve - failed to update status: %v", ErrInternal, err)
		}

		app.Status = domain.ApplicationApproved
		result = &models.ApproveResponse{
			Application: *models.FromDomainApplication(app),
			ClientID:    client.ID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ApproveApplication: id=%d approved, client id=%d created", id, result.ClientID)
	return result, nil
}

// Decline отклоняет заявку
func (s *Service) Decline(ctx context.Context, id int64) (*models.ApplicationResponse, error) {
	s.logger.Info("DeclineApplication: id=%d", id)

	app, err := s.getPending(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applicationRepo.UpdateStatus(ctx, id, domain.ApplicationDeclined); err != nil {
		s.logger.Error("DeclineApplication: failed to update status id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Decline - failed to update status: %v", ErrInternal, err)
	}

	app.Status = domain.ApplicationDeclined

	s.logger.Info("DeclineApplication: id=%d declined", id)
	return models.FromDomainApplication(app), nil
}

// getPending загружает заявку и проверяет, что решение ещё не принято
func (s *Service) getPending(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, applicationRepo.ErrApplicationNotFound) {
			s.logger.Warn("Application id=%d not found", id)
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if !app.IsPending() {
		s.logger.Warn("Application id=%d already reviewed (status=%s)", id, app.Status)
		return nil, ErrAlreadyReviewed
	}

	return app, nil
}

func validateCreateRequest(req *models.CreateApplicationRequest) error {
	if req.FullName == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	if req.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if req.PetName == "" {
		return fmt.Errorf("%w: petName is required", ErrInvalidInput)
	}
	if req.PetBreed == "" {
		return fmt.Errorf("%w: petBreed is required", ErrInvalidInput)
	}
	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes is too long", ErrInvalidInput)
	}
	return nil
}
