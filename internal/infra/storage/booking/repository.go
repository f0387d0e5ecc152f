package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Rxdxy/grooming-booking/internal/domain"
	"github.com/Rxdxy/grooming-booking/pkg/dbmetrics"
	"github.com/Rxdxy/grooming-booking/pkg/psqlbuilder"
)

// bookingColumns колонки bookings с агрегированными услугами
// GROUP BY b.id покрывает остальные колонки по первичному ключу
var bookingColumns = []string{
	"b.id",
	"b.client_id",
	"b.address",
	"b.pet_name",
	"b.pet_breed",
	"b.pet_weight_lbs",
	"b.pet_age_years",
	"b.special_needs",
	"b.scheduled_start",
	"b.scheduled_end",
	"b.status",
	"b.created_at",
	"b.updated_at",
	"COALESCE(array_agg(s.id ORDER BY s.id) FILTER (WHERE s.id IS NOT NULL), '{}') AS service_ids",
	"COALESCE(array_agg(s.name ORDER BY s.id) FILTER (WHERE s.id IS NOT NULL), '{}') AS service_names",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		LeftJoin("booking_services bs ON bs.booking_id = b.id").
		LeftJoin("services s ON s.id = bs.service_id").
		GroupBy("b.id")
}

// Create создает новое бронирование вместе со связями на услуги
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Создание с назначенным интервалом обязано выполняться внутри сериализуемой
// транзакции вместе с проверкой конфликтов — это ответственность usecase
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var scheduledStart, scheduledEnd interface{}
	if booking.Scheduled != nil {
		scheduledStart = booking.Scheduled.Start
		scheduledEnd = booking.Scheduled.End
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"client_id",
			"address",
			"pet_name",
			"pet_breed",
			"pet_weight_lbs",
			"pet_age_years",
			"special_needs",
			"scheduled_start",
			"scheduled_end",
			"status",
		).
		Values(
			booking.ClientID,
			booking.Address,
			booking.PetName,
			booking.PetBreed,
			booking.PetWeightLbs,
			booking.PetAgeYears,
			booking.SpecialNeeds,
			scheduledStart,
			scheduledEnd,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	if err := r.replaceServices(ctx, executor, booking.ID, booking.ServiceIDs); err != nil {
		return nil, err
	}

	return booking, nil
}

// replaceServices перезаписывает связи бронирования с услугами
func (r *Repository) replaceServices(ctx context.Context, executor DBExecutor, bookingID int64, serviceIDs []int64) error {
	query, args, err := psqlbuilder.Delete("booking_services").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceServices - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceServices - execute delete: %v", ErrExecQuery, err)
	}

	if len(serviceIDs) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("booking_services").Columns("booking_id", "service_id")
	for _, serviceID := range serviceIDs {
		insert = insert.Values(bookingID, serviceID)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceServices - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceServices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает бронирование по ID вместе с выбранными услугами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования с гибкой фильтрацией
// По умолчанию возвращает только активные бронирования (статусы new/confirmed);
// неактивные включаются через filter.IncludeInactive
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.selectBookings()

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.client_id": *filter.ClientID})
	}

	if filter.OnlyScheduled {
		selectBuilder = selectBuilder.Where("b.scheduled_start IS NOT NULL")
	}

	// Пересечение назначенного интервала с запрошенным диапазоном
	// (полуоткрытые интервалы: касание границ пересечением не считается)
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"b.scheduled_end": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"b.scheduled_start": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("b.scheduled_start ASC NULLS LAST, b.created_at DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetActiveIntervals получает интервалы всех активных бронирований с назначенным
// временем, опционально исключая одно бронирование по ID (self-exclusion при
// повторном сохранении).
// Внутри транзакции строки блокируются через FOR UPDATE, чтобы конкурирующая
// запись не прошла проверку конфликтов одновременно с текущей
func (r *Repository) GetActiveIntervals(ctx context.Context, excludeID *int64) ([]domain.ActiveInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("id", "scheduled_start", "scheduled_end").
		From("bookings").
		Where(squirrel.Eq{"status": activeStatusStrings}).
		Where("scheduled_start IS NOT NULL").
		OrderBy("scheduled_start ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveIntervals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.ActiveInterval, 0)
	for rows.Next() {
		var ai domain.ActiveInterval
		if err := rows.Scan(&ai.BookingID, &ai.Interval.Start, &ai.Interval.End); err != nil {
			return nil, fmt.Errorf("%w: GetActiveIntervals - scan row: %v", ErrScanRow, err)
		}
		intervals = append(intervals, ai)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveIntervals - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// GetActiveIntervalsInRange получает интервалы активных бронирований,
// пересекающие полуоткрытый диапазон [from, to)
// Чистый read-path для календарных фидов и генератора слотов: без блокировок,
// допускается чтение слегка устаревших данных
func (r *Repository) GetActiveIntervalsInRange(ctx context.Context, from, to time.Time) ([]domain.ActiveInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("id", "scheduled_start", "scheduled_end").
		From("bookings").
		Where(squirrel.Eq{"status": activeStatusStrings}).
		Where("scheduled_start IS NOT NULL").
		Where(squirrel.Lt{"scheduled_start": to}).
		Where(squirrel.Gt{"scheduled_end": from}).
		OrderBy("scheduled_start ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveIntervalsInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveIntervalsInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.ActiveInterval, 0)
	for rows.Next() {
		var ai domain.ActiveInterval
		if err := rows.Scan(&ai.BookingID, &ai.Interval.Start, &ai.Interval.End); err != nil {
			return nil, fmt.Errorf("%w: GetActiveIntervalsInRange - scan row: %v", ErrScanRow, err)
		}
		intervals = append(intervals, ai)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveIntervalsInRange - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// UpdateSchedule назначает или переносит интервал бронирования
// Обязано выполняться внутри сериализуемой транзакции вместе с проверкой
// конфликтов — это ответственность usecase
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, interval domain.Interval) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("scheduled_start", interval.Start).
		Set("scheduled_end", interval.End).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
// Физического удаления нет: decline/complete выводят бронирование из
// активного множества, история сохраняется
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку результата в доменную модель
func scanBooking(scan func(dest ...interface{}) error) (*domain.Booking, error) {
	var booking domain.Booking
	var scheduledStart, scheduledEnd, createdAt, updatedAt sql.NullTime
	var serviceIDs pq.Int64Array
	var serviceNames pq.StringArray

	err := scan(
		&booking.ID,
		&booking.ClientID,
		&booking.Address,
		&booking.PetName,
		&booking.PetBreed,
		&booking.PetWeightLbs,
		&booking.PetAgeYears,
		&booking.SpecialNeeds,
		&scheduledStart,
		&scheduledEnd,
		&booking.Status,
		&createdAt,
		&updatedAt,
		&serviceIDs,
		&serviceNames,
	)
	if err != nil {
		return nil, err
	}

	if scheduledStart.Valid && scheduledEnd.Valid {
		booking.Scheduled = &domain.Interval{Start: scheduledStart.Time, End: scheduledEnd.Time}
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	booking.ServiceIDs = []int64(serviceIDs)
	booking.ServiceNames = []string(serviceNames)

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
