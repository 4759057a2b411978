package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

// Колонки бронирования с присоединенными кортом, покрытием, типом игры
// и клиентом. Ссылки читаются без фильтра deleted_at: бронирование хранит
// ссылку по id, целостность данных контролирует расчет цены.
var joinedColumns = []string{
	"r.id", "r.global_id", "r.start_time", "r.end_time", "r.created_at",
	"c.id", "c.global_id", "c.name", "c.created_at",
	"s.id", "s.global_id", "s.name", "s.price_per_minute", "s.created_at",
	"g.id", "g.name", "g.price_multiplier",
	"cu.id", "cu.global_id", "cu.name", "cu.phone", "cu.created_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование. global_id генерируется здесь,
// значение клиента игнорируется.
//
// Вызывается внутри SERIALIZABLE транзакции вместе с ExistsOverlap,
// чтобы из двух конкурентных пересекающихся бронирований на один корт
// зафиксировалась максимум одна.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	res.GlobalID = uuid.New()

	query, args, err := psqlbuilder.Insert("reservations").
		Columns("global_id", "court_id", "game_type_id", "customer_id", "start_time", "end_time").
		Values(res.GlobalID, res.Court.ID, res.GameType.ID, res.Customer.ID, res.StartTime, res.EndTime).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetByGlobalID получает бронирование по внешнему идентификатору
func (r *Repository) GetByGlobalID(ctx context.Context, globalID uuid.UUID) (*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := r.selectJoined().
		Where(squirrel.Eq{"r.global_id": globalID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGlobalID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGlobalID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListAll получает все не удаленные бронирования в порядке создания
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	query, args, err := r.selectJoined().
		OrderBy("r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryMany(ctx, "ListAll", query, args)
}

// ListForCourt получает бронирования корта в порядке создания записей.
// Существование корта проверяет вызывающий слой.
func (r *Repository) ListForCourt(ctx context.Context, courtName string) ([]*domain.Reservation, error) {
	query, args, err := r.selectJoined().
		Where(squirrel.Eq{"c.name": courtName, "c.deleted_at": nil}).
		OrderBy("r.created_at ASC, r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForCourt - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryMany(ctx, "ListForCourt", query, args)
}

// ListForPhone получает бронирования клиента по телефону в порядке времени
// начала. Если fromTime задан, возвращаются только бронирования,
// начинающиеся строго позже указанного момента.
func (r *Repository) ListForPhone(ctx context.Context, phone string, fromTime *time.Time) ([]*domain.Reservation, error) {
	builder := r.selectJoined().
		Where(squirrel.Eq{"cu.phone": phone, "cu.deleted_at": nil})

	if fromTime != nil {
		builder = builder.Where(squirrel.Gt{"r.start_time": *fromTime})
	}

	query, args, err := builder.
		OrderBy("r.start_time ASC, r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForPhone - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryMany(ctx, "ListForPhone", query, args)
}

// ExistsOverlap проверяет, пересекается ли интервал [start, end) хотя бы
// с одним не удаленным бронированием на указанном корте. Полуоткрытая
// семантика: соприкасающиеся границы конфликтом не считаются.
//
// excludeID исключает собственную запись при переносе бронирования.
// Неизвестное имя корта дает пустую выборку, то есть false.
func (r *Repository) ExistsOverlap(ctx context.Context, courtName string, start, end time.Time, excludeID *int64) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("1").
		From("reservations r").
		Join("courts c ON c.id = r.court_id").
		Where(squirrel.Eq{"c.name": courtName, "c.deleted_at": nil, "r.deleted_at": nil}).
		Where(squirrel.Lt{"r.start_time": end}).
		Where(squirrel.Gt{"r.end_time": start})

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"r.id": *excludeID})
	}

	inner, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (%s)", inner)
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsOverlap - execute query: %v", ErrExecQuery, err)
	}

	return exists, nil
}

// CountForCourt подсчитывает не удаленные бронирования корта.
// Используется для защиты корта от удаления.
func (r *Repository) CountForCourt(ctx context.Context, courtName string) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations r").
		Join("courts c ON c.id = r.court_id").
		Where(squirrel.Eq{"c.name": courtName, "r.deleted_at": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountForCourt - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountForCourt - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// Update сохраняет измененные ссылки и интервал бронирования
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("court_id", res.Court.ID).
		Set("game_type_id", res.GameType.ID).
		Set("customer_id", res.Customer.ID).
		Set("start_time", res.StartTime).
		Set("end_time", res.EndTime).
		Where(squirrel.Eq{"id": res.ID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// SoftDelete помечает бронирование удаленным; запись исчезает из всех
// выборок и проверок пересечения
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
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
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) selectJoined() squirrel.SelectBuilder {
	return psqlbuilder.Select(joinedColumns...).
		From("reservations r").
		Join("courts c ON c.id = r.court_id").
		Join("surfaces s ON s.id = c.surface_id").
		Join("game_types g ON g.id = r.game_type_id").
		Join("customers cu ON cu.id = r.customer_id").
		Where(squirrel.Eq{"r.deleted_at": nil})
}

func (r *Repository) queryMany(ctx context.Context, op, query string, args []interface{}) ([]*domain.Reservation, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return reservations, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var c domain.Court
	var s domain.Surface
	var g domain.GameType
	var cu domain.Customer

	err := row.Scan(
		&res.ID, &res.GlobalID, &res.StartTime, &res.EndTime, &res.CreatedAt,
		&c.ID, &c.GlobalID, &c.Name, &c.CreatedAt,
		&s.ID, &s.GlobalID, &s.Name, &s.PricePerMinute, &s.CreatedAt,
		&g.ID, &g.Name, &g.PriceMultiplier,
		&cu.ID, &cu.GlobalID, &cu.Name, &cu.Phone, &cu.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Surface = &s
	res.Court = &c
	res.GameType = &g
	res.Customer = &cu
	return &res, nil
}
