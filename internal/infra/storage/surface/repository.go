package surface

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

const table = "surfaces"

var columns = []string{"id", "global_id", "name", "price_per_minute", "created_at"}

// Repository репозиторий покрытий кортов
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория покрытий
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое покрытие. global_id генерируется на стороне сервиса.
func (r *Repository) Create(ctx context.Context, s *domain.Surface) (*domain.Surface, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	s.GlobalID = uuid.New()

	query, args, err := psqlbuilder.Insert(table).
		Columns("global_id", "name", "price_per_minute").
		Values(s.GlobalID, s.Name, s.PricePerMinute).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		if txmanager.IsUniqueViolation(err) {
			return nil, ErrSurfaceExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByName получает покрытие по имени (только не удаленные записи)
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Surface, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"name": name, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Surface
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.GlobalID, &s.Name, &s.PricePerMinute, &s.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSurfaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan surface: %v", ErrScanRow, err)
	}

	return &s, nil
}

// List получает все не удаленные покрытия в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.Surface, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	surfaces := make([]*domain.Surface, 0)
	for rows.Next() {
		var s domain.Surface
		if err := rows.Scan(&s.ID, &s.GlobalID, &s.Name, &s.PricePerMinute, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		surfaces = append(surfaces, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return surfaces, nil
}

// UpdateRate обновляет стоимость минуты. Хранилище позволяет менять тариф,
// пересчет цен существующих бронирований происходит автоматически при чтении.
func (r *Repository) UpdateRate(ctx context.Context, name string, pricePerMinute int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("price_per_minute", pricePerMinute).
		Where(squirrel.Eq{"name": name, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateRate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSurfaceNotFound
	}

	return nil
}
