package courts

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	Create(ctx context.Context, c *domain.Court) (*domain.Court, error)
	GetByGlobalID(ctx context.Context, globalID uuid.UUID) (*domain.Court, error)
	GetByName(ctx context.Context, name string) (*domain.Court, error)
	List(ctx context.Context) ([]*domain.Court, error)
	Update(ctx context.Context, c *domain.Court) error
	SoftDelete(ctx context.Context, id int64) error
}

// SurfaceRepository интерфейс репозитория покрытий
type SurfaceRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Surface, error)
}

// ReservationRepository интерфейс репозитория бронирований
// (для защиты корта от удаления)
type ReservationRepository interface {
	CountForCourt(ctx context.Context, courtName string) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
