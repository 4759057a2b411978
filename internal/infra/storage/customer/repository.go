package customer

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

const table = "customers"

var columns = []string{"id", "global_id", "name", "phone", "created_at"}

// Repository репозиторий клиентов
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового клиента. Уникальность телефона обеспечивает
// partial unique index по не удаленным записям: при гонке двух вставок
// с одним номером вторая получает ErrPhoneExists.
func (r *Repository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	c.GlobalID = uuid.New()

	query, args, err := psqlbuilder.Insert(table).
		Columns("global_id", "name", "phone").
		Values(c.GlobalID, c.Name, c.Phone).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if txmanager.IsUniqueViolation(err) {
			return nil, ErrPhoneExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return c, nil
}

// FindByPhone ищет клиента по номеру телефона.
// Возвращает (nil, nil), если клиент не найден - отсутствие клиента
// не является ошибкой для resolve-or-create логики.
func (r *Repository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	c, err := r.getOne(ctx, squirrel.Eq{"phone": phone, "deleted_at": nil})
	if err == ErrCustomerNotFound {
		return nil, nil
	}
	return c, err
}

// GetByPhone получает клиента по номеру телефона
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	return r.getOne(ctx, squirrel.Eq{"phone": phone, "deleted_at": nil})
}

// GetByName получает клиента по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Customer, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name, "deleted_at": nil})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Customer, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.GlobalID, &c.Name, &c.Phone, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan customer: %v", ErrScanRow, err)
	}

	return &c, nil
}

// List получает всех не удаленных клиентов в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.GlobalID, &c.Name, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return customers, nil
}
