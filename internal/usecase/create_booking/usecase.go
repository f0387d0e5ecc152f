package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rxdxy/grooming-booking/internal/domain"
	clientRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/client"
	servicesRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/services"
)

// UseCase use case создания бронирования через публичную форму или персонал
// Когда в запросе указано желаемое окно, проверка конфликтов и вставка
// выполняются одной сериализуемой транзакцией
type UseCase struct {
	bookingRepo  BookingRepository
	clientRepo   ClientRepository
	servicesRepo ServicesRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	servicesRepo ServicesRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		clientRepo:   clientRepo,
		servicesRepo: servicesRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет создание бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: pet=%q, services=%d, scheduled=%v",
		req.PetName, len(req.ServiceIDs), req.Scheduled != nil)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Каталог услуг читается вне транзакции: он меняется редко
	selectedServices, err := uc.servicesRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: unknown service in %v", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to load services: %v", err)
		return nil, fmt.Errorf("%w: failed to load services: %v", ErrInternal, err)
	}

	serviceNames := make([]string, len(selectedServices))
	for i, svc := range selectedServices {
		serviceNames[i] = svc.Name
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		client, err := uc.resolveClient(txCtx, req)
		if err != nil {
			return err
		}

		// Адрес выезда по умолчанию берётся из карточки клиента
		address := req.Address
		if address == "" {
			address = client.Address
		}
		if address == "" {
			return ErrMissingAddress
		}

		// Заявки проверенных клиентов подтверждаются автоматически,
		// остальные ждут решения персонала
		status := domain.StatusNew
		if req.ClientID != nil && client.IsActive {
			status = domain.StatusConfirmed
		}

		if req.Scheduled != nil {
			active, err := uc.bookingRepo.GetActiveIntervals(txCtx, nil)
			if err != nil {
				return fmt.Errorf("%w: failed to load active intervals: %v", ErrInternal, err)
			}

			if err := domain.CheckConflict(*req.Scheduled, nil, active); err != nil {
				var conflict *domain.ConflictError
				if errors.As(err, &conflict) {
					uc.logger.Warn("CreateBooking: requested window conflicts with booking=%d", conflict.BookingID)
					return fmt.Errorf("%w: booking id=%d", ErrConflict, conflict.BookingID)
				}
				return ErrInvalidInterval
			}
		}

		booking := &domain.Booking{
			ClientID:     client.ID,
			Address:      address,
			PetName:      req.PetName,
			PetBreed:     req.PetBreed,
			PetWeightLbs: req.PetWeightLbs,
			PetAgeYears:  req.PetAgeYears,
			SpecialNeeds: req.SpecialNeeds,
			Scheduled:    req.Scheduled,
			ServiceIDs:   req.ServiceIDs,
			ServiceNames: serviceNames,
			Status:       status,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d, client=%d, status=%s",
		result.ID, result.ClientID, result.Status)

	return &Response{
		ID:           result.ID,
		ClientID:     result.ClientID,
		Address:      result.Address,
		PetName:      result.PetName,
		PetBreed:     result.PetBreed,
		PetWeightLbs: result.PetWeightLbs,
		PetAgeYears:  result.PetAgeYears,
		SpecialNeeds: result.SpecialNeeds,
		Scheduled:    result.Scheduled,
		ServiceIDs:   result.ServiceIDs,
		ServiceNames: result.ServiceNames,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// resolveClient находит существующего клиента или заводит нового
func (uc *UseCase) resolveClient(ctx context.Context, req *Request) (*domain.Client, error) {
	if req.ClientID != nil {
		client, err := uc.clientRepo.GetByID(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return nil, ErrClientNotFound
			}
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
		return client, nil
	}

	client, err := uc.clientRepo.Create(ctx, &domain.Client{
		FullName: req.FullName,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: false,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}
	return client, nil
}
