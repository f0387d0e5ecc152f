package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rxdxy/grooming-booking/internal/domain"
	clientRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/client"
	"github.com/Rxdxy/grooming-booking/pkg/ptr"
)

type fakeBookingRepo struct {
	active  []domain.ActiveInterval
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	copy := *booking
	copy.ID = 100
	f.created = &copy
	return &copy, nil
}

func (f *fakeBookingRepo) GetActiveIntervals(_ context.Context, _ *int64) ([]domain.ActiveInterval, error) {
	return f.active, nil
}

type fakeClientRepo struct {
	clients map[int64]*domain.Client
	nextID  int64
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[int64]*domain.Client), nextID: 50}
}

func (f *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	f.nextID++
	copy := *client
	copy.ID = f.nextID
	f.clients[copy.ID] = &copy
	return &copy, nil
}

type fakeServicesRepo struct{}

func (fakeServicesRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	result := make([]*domain.Service, len(ids))
	for i, id := range ids {
		result[i] = &domain.Service{ID: id, Name: "Full Groom"}
	}
	return result, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		FullName:     "Jamie Fox",
		Address:      "12 Maple St",
		Phone:        "+1-555-0101",
		PetName:      "Rex",
		PetBreed:     "Poodle",
		PetWeightLbs: 40,
		PetAgeYears:  3,
		ServiceIDs:   []int64{1},
	}
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestExecute_NewClientStartsAsNew(t *testing.T) {
	bookings := &fakeBookingRepo{}
	clients := newFakeClientRepo()
	uc := NewUseCase(bookings, clients, fakeServicesRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "new", resp.Status)
	assert.Equal(t, []string{"Full Groom"}, resp.ServiceNames)

	// Новый клиент заводится недоверенным
	created := clients.clients[resp.ClientID]
	require.NotNil(t, created)
	assert.False(t, created.IsActive)
}

func TestExecute_TrustedClientAutoConfirmed(t *testing.T) {
	bookings := &fakeBookingRepo{}
	clients := newFakeClientRepo()
	clients.clients[7] = &domain.Client{ID: 7, FullName: "Sam Lee", Address: "3 Oak Ave", IsActive: true}

	uc := NewUseCase(bookings, clients, fakeServicesRepo{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.ClientID = ptr.Ptr(int64(7))
	req.FullName = ""
	req.Phone = ""
	req.Address = ""

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	// Адрес подтянут из карточки клиента
	assert.Equal(t, "3 Oak Ave", resp.Address)
}

func TestExecute_UntrustedExistingClientStaysNew(t *testing.T) {
	clients := newFakeClientRepo()
	clients.clients[7] = &domain.Client{ID: 7, FullName: "Sam Lee", Address: "3 Oak Ave", IsActive: false}

	uc := NewUseCase(&fakeBookingRepo{}, clients, fakeServicesRepo{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.ClientID = ptr.Ptr(int64(7))

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "new", resp.Status)
}

func TestExecute_ScheduledConflictRejected(t *testing.T) {
	bookings := &fakeBookingRepo{
		active: []domain.ActiveInterval{
			{BookingID: 3, Interval: domain.Interval{
				Start: ts(t, "2026-09-01T09:00:00Z"),
				End:   ts(t, "2026-09-01T10:00:00Z"),
			}},
		},
	}

	uc := NewUseCase(bookings, newFakeClientRepo(), fakeServicesRepo{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.Scheduled = &domain.Interval{
		Start: ts(t, "2026-09-01T09:30:00Z"),
		End:   ts(t, "2026-09-01T10:30:00Z"),
	}

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrConflict)
	assert.Nil(t, bookings.created)
}

func TestExecute_ScheduledWithoutConflict(t *testing.T) {
	bookings := &fakeBookingRepo{
		active: []domain.ActiveInterval{
			{BookingID: 3, Interval: domain.Interval{
				Start: ts(t, "2026-09-01T09:00:00Z"),
				End:   ts(t, "2026-09-01T10:00:00Z"),
			}},
		},
	}

	uc := NewUseCase(bookings, newFakeClientRepo(), fakeServicesRepo{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	// Смежное окно: начало ровно в конце занятого интервала
	req.Scheduled = &domain.Interval{
		Start: ts(t, "2026-09-01T10:00:00Z"),
		End:   ts(t, "2026-09-01T11:00:00Z"),
	}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.Scheduled)
	assert.Equal(t, ts(t, "2026-09-01T10:00:00Z"), resp.Scheduled.Start)
}

func TestExecute_UnknownClient(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, newFakeClientRepo(), fakeServicesRepo{}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.ClientID = ptr.Ptr(int64(404))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, newFakeClientRepo(), fakeServicesRepo{}, fakeTxManager{}, nopLogger{})

	t.Run("missing pet name", func(t *testing.T) {
		req := validRequest()
		req.PetName = ""
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("no services", func(t *testing.T) {
		req := validRequest()
		req.ServiceIDs = nil
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("inverted scheduled window", func(t *testing.T) {
		req := validRequest()
		req.Scheduled = &domain.Interval{
			Start: ts(t, "2026-09-01T10:00:00Z"),
			End:   ts(t, "2026-09-01T09:00:00Z"),
		}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}
