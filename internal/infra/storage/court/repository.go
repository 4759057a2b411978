package court

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

// Колонки корта с присоединенным покрытием. Покрытие читается без фильтра
// deleted_at: ссылка по id переживает мягкое удаление цели, целостность
// контролируется при расчете цены.
var joinedColumns = []string{
	"c.id", "c.global_id", "c.name", "c.created_at",
	"s.id", "s.global_id", "s.name", "s.price_per_minute", "s.created_at",
}

// Repository репозиторий кортов
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый корт. global_id генерируется здесь, значение
// клиента игнорируется.
func (r *Repository) Create(ctx context.Context, c *domain.Court) (*domain.Court, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	c.GlobalID = uuid.New()

	query, args, err := psqlbuilder.Insert("courts").
		Columns("global_id", "name", "surface_id").
		Values(c.GlobalID, c.Name, c.Surface.ID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if txmanager.IsUniqueViolation(err) {
			return nil, ErrCourtExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// GetByGlobalID получает корт по внешнему идентификатору
func (r *Repository) GetByGlobalID(ctx context.Context, globalID uuid.UUID) (*domain.Court, error) {
	return r.getOne(ctx, squirrel.Eq{"c.global_id": globalID, "c.deleted_at": nil})
}

// GetByName получает корт по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Court, error) {
	return r.getOne(ctx, squirrel.Eq{"c.name": name, "c.deleted_at": nil})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Court, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns...).
		From("courts c").
		Join("surfaces s ON s.id = c.surface_id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCourt(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan court: %v", ErrScanRow, err)
	}

	return c, nil
}

// List получает все не удаленные корты в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.Court, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns...).
		From("courts c").
		Join("surfaces s ON s.id = c.surface_id").
		Where(squirrel.Eq{"c.deleted_at": nil}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		c, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		courts = append(courts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// Update сохраняет имя и покрытие корта
func (r *Repository) Update(ctx context.Context, c *domain.Court) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
		Set("name", c.Name).
		Set("surface_id", c.Surface.ID).
		Where(squirrel.Eq{"id": c.ID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if txmanager.IsUniqueViolation(err) {
			return ErrCourtExists
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCourtNotFound
	}

	return nil
}

// SoftDelete помечает корт удаленным; запись исчезает из всех выборок
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCourtNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCourt(row rowScanner) (*domain.Court, error) {
	var c domain.Court
	var s domain.Surface

	err := row.Scan(
		&c.ID, &c.GlobalID, &c.Name, &c.CreatedAt,
		&s.ID, &s.GlobalID, &s.Name, &s.PricePerMinute, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Surface = &s
	return &c, nil
}
