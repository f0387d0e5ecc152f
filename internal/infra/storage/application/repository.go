package application

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Rxdxy/grooming-booking/internal/domain"
	"github.com/Rxdxy/grooming-booking/pkg/dbmetrics"
	"github.com/Rxdxy/grooming-booking/pkg/psqlbuilder"
)

var applicationColumns = []string{
	"id",
	"full_name",
	"address",
	"zip_code",
	"phone",
	"pet_name",
	"pet_breed",
	"pet_weight_lbs",
	"pet_age_years",
	"notes",
	"status",
	"created_at",
}

// Repository репозиторий для работы с заявками новых клиентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую заявку
func (r *Repository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("applications").
		Columns(
			"full_name",
			"address",
			"zip_code",
			"phone",
			"pet_name",
			"pet_breed",
			"pet_weight_lbs",
			"pet_age_years",
			"notes",
			"status",
		).
		Values(
			app.FullName,
			app.Address,
			app.ZipCode,
			app.Phone,
			app.PetName,
			app.PetBreed,
			app.PetWeightLbs,
			app.PetAgeYears,
			app.Notes,
			app.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&app.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	app.CreatedAt = createdAt.Time

	return app, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	app, err := scanApplication(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan application: %v", ErrScanRow, err)
	}

	return app, nil
}

// List получает заявки, опционально фильтруя по статусу
func (r *Repository) List(ctx context.Context, status *domain.ApplicationStatus) ([]*domain.Application, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(applicationColumns...).
		From("applications").
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	apps := make([]*domain.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return apps, nil
}

// UpdateStatus обновляет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("applications").
		Set("status", status).
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
		return ErrApplicationNotFound
	}

	return nil
}

func scanApplication(scan func(dest ...interface{}) error) (*domain.Application, error) {
	var app domain.Application
	var createdAt sql.NullTime

	err := scan(
		&app.ID,
		&app.FullName,
		&app.Address,
		&app.ZipCode,
		&app.Phone,
		&app.PetName,
		&app.PetBreed,
		&app.PetWeightLbs,
		&app.PetAgeYears,
		&app.Notes,
		&app.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	app.CreatedAt = createdAt.Time

	return &app, nil
}
