package applications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rxdxy/grooming-booking/internal/domain"
	applicationRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/application"
	"github.com/Rxdxy/grooming-booking/internal/service/applications/models"
)

type fakeApplicationRepo struct {
	apps     map[int64]*domain.Application
	nextID   int64
	statuses map[int64]domain.ApplicationStatus
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:     make(map[int64]*domain.Application),
		statuses: make(map[int64]domain.ApplicationStatus),
	}
}

func (f *fakeApplicationRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	f.nextID++
	cloned := *app
	cloned.ID = f.nextID
	f.apps[cloned.ID] = &cloned
	return &cloned, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id int64) (*domain.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, applicationRepo.ErrApplicationNotFound
	}
	cloned := *app
	return &cloned, nil
}

func (f *fakeApplicationRepo) List(_ context.Context, status *domain.ApplicationStatus) ([]*domain.Application, error) {
	result := make([]*domain.Application, 0, len(f.apps))
	for _, app := range f.apps {
		if status != nil && app.Status != *status {
			continue
		}
		result = append(result, app)
	}
	return result, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) error {
	f.statuses[id] = status
	if app, ok := f.apps[id]; ok {
		app.Status = status
	}
	return nil
}

type fakeClientRepo struct {
	created []*domain.Client
}

func (f *fakeClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	cloned := *client
	cloned.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &cloned)
	return &cloned, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateApplicationRequest {
	return &models.CreateApplicationRequest{
		FullName: "Jamie Fox",
		Address:  "12 Maple St",
		Phone:    "+1-555-0101",
		PetName:  "Rex",
		PetBreed: "Poodle",
	}
}

func newTestService() (*Service, *fakeApplicationRepo, *fakeClientRepo) {
	apps := newFakeApplicationRepo()
	clients := &fakeClientRepo{}
	return NewService(apps, clients, fakeTxManager{}, nopLogger{}), apps, clients
}

func TestCreate_StartsPending(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.NotZero(t, resp.ID)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	req := validCreateRequest()
	req.PetName = ""

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestApprove_CreatesActiveClient(t *testing.T) {
	svc, apps, clients := newTestService()

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.Approve(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Application.Status)
	assert.Equal(t, domain.ApplicationApproved, apps.statuses[created.ID])

	// Одобрение сразу заводит доверенного клиента из данных заявки
	require.Len(t, clients.created, 1)
	client := clients.created[0]
	assert.Equal(t, client.ID, resp.ClientID)
	assert.True(t, client.IsActive)
	assert.Equal(t, "Jamie Fox", client.FullName)
	assert.Equal(t, "12 Maple St", client.Address)
}

func TestApprove_AlreadyReviewed(t *testing.T) {
	svc, _, clients := newTestService()

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)

	// Повторное решение по заявке не проходит и не плодит клиентов
	_, err = svc.Approve(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Len(t, clients.created, 1)
}

func TestDecline(t *testing.T) {
	svc, _, clients := newTestService()

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.Decline(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, "declined", resp.Status)
	// Отклонение не создаёт клиента
	assert.Empty(t, clients.created)

	_, err = svc.Approve(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestApprove_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Approve(context.Background(), 404)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestList_FilterByStatus(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Decline(context.Background(), first.ID)
	require.NoError(t, err)

	pending := "pending"
	resp, err := svc.List(context.Background(), &pending)

	require.NoError(t, err)
	assert.Len(t, resp.Applications, 1)
}

func TestList_InvalidStatus(t *testing.T) {
	svc, _, _ := newTestService()

	bad := "archived"
	_, err := svc.List(context.Background(), &bad)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
