package schedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rxdxy/grooming-booking/internal/domain"
	bookingRepo "github.com/Rxdxy/grooming-booking/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings  map[int64]*domain.Booking
	active    []domain.ActiveInterval
	scheduled map[int64]domain.Interval
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:  make(map[int64]*domain.Booking),
		scheduled: make(map[int64]domain.Interval),
	}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copy := *b
	return &copy, nil
}

func (f *fakeBookingRepo) GetActiveIntervals(_ context.Context, _ *int64) ([]domain.ActiveInterval, error) {
	return f.active, nil
}

func (f *fakeBookingRepo) UpdateSchedule(_ context.Context, id int64, interval domain.Interval) error {
	f.scheduled[id] = interval
	return nil
}

// fakeTxManager выполняет fn без транзакции: проверяем оркестрацию, не изоляцию
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestExecute_Success(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[1] = &domain.Booking{
		ID:       1,
		ClientID: 10,
		Address:  "12 Maple St",
		PetName:  "Rex",
		Status:   domain.StatusConfirmed,
	}

	txMgr := &fakeTxManager{}
	uc := NewUseCase(repo, txMgr, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Start:     ts(t, "2026-09-01T09:00:00Z"),
		End:       ts(t, "2026-09-01T10:00:00Z"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Rex", resp.PetName)
	assert.Equal(t, ts(t, "2026-09-01T09:00:00Z"), resp.Scheduled.Start)

	// Интервал записан внутри сериализуемой транзакции
	assert.Equal(t, 1, txMgr.calls)
	assert.Equal(t, ts(t, "2026-09-01T10:00:00Z"), repo.scheduled[1].End)
}

func TestExecute_ConflictNothingPersisted(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[1] = &domain.Booking{ID: 1, Status: domain.StatusNew}
	repo.active = []domain.ActiveInterval{
		{BookingID: 2, Interval: domain.Interval{
			Start: ts(t, "2026-09-01T09:00:00Z"),
			End:   ts(t, "2026-09-01T10:00:00Z"),
		}},
	}

	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Start:     ts(t, "2026-09-01T09:30:00Z"),
		End:       ts(t, "2026-09-01T10:30:00Z"),
	})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, repo.scheduled)
}

func TestExecute_SelfOverlapAllowed(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[1] = &domain.Booking{ID: 1, Status: domain.StatusConfirmed}
	// Прежнее окно самого бронирования в активном множестве
	repo.active = []domain.ActiveInterval{
		{BookingID: 1, Interval: domain.Interval{
			Start: ts(t, "2026-09-01T09:00:00Z"),
			End:   ts(t, "2026-09-01T10:00:00Z"),
		}},
	}

	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	// Сдвиг на полчаса пересекает своё же старое окно: не конфликт
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Start:     ts(t, "2026-09-01T09:30:00Z"),
		End:       ts(t, "2026-09-01T10:30:00Z"),
	})

	require.NoError(t, err)
	assert.Equal(t, ts(t, "2026-09-01T09:30:00Z"), resp.Scheduled.Start)
}

func TestExecute_InvalidInterval(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[1] = &domain.Booking{ID: 1, Status: domain.StatusNew}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(repo, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Start:     ts(t, "2026-09-01T10:00:00Z"),
		End:       ts(t, "2026-09-01T10:00:00Z"),
	})

	assert.ErrorIs(t, err, ErrInvalidInterval)
	// Валидация до транзакции
	assert.Zero(t, txMgr.calls)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 99,
		Start:     ts(t, "2026-09-01T09:00:00Z"),
		End:       ts(t, "2026-09-01T10:00:00Z"),
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InactiveBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings[1] = &domain.Booking{ID: 1, Status: domain.StatusDeclined}

	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 1,
		Start:     ts(t, "2026-09-01T09:00:00Z"),
		End:       ts(t, "2026-09-01T10:00:00Z"),
	})

	assert.ErrorIs(t, err, ErrBookingInactive)
	assert.Empty(t, repo.scheduled)
}
