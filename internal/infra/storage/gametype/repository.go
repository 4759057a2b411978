package gametype

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// Repository репозиторий типов игр.
// Таблица game_types - справочник, заполняется при инициализации
// и не изменяется кодом сервиса.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов игр
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByName получает тип игры по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.GameType, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price_multiplier").
		From("game_types").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	var gt domain.GameType
	err = executor.QueryRowContext(ctx, query, args...).Scan(&gt.ID, &gt.Name, &gt.PriceMultiplier)
	if err == sql.ErrNoRows {
		return nil, ErrGameTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan game type: %v", ErrScanRow, err)
	}

	return &gt, nil
}

// Seed добавляет тип игры, если его еще нет.
// Используется только инициализацией справочника при старте.
func (r *Repository) Seed(ctx context.Context, name string, priceMultiplier float64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("game_types").
		Columns("name", "price_multiplier").
		Values(name, priceMultiplier).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Seed - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Seed - execute query: %v", ErrExecQuery, err)
	}

	return nil
}

// List получает все типы игр
func (r *Repository) List(ctx context.Context) ([]*domain.GameType, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price_multiplier").
		From("game_types").
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

	gameTypes := make([]*domain.GameType, 0)
	for rows.Next() {
		var gt domain.GameType
		if err := rows.Scan(&gt.ID, &gt.Name, &gt.PriceMultiplier); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		gameTypes = append(gameTypes, &gt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return gameTypes, nil
}
