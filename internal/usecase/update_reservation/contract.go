package update_reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByGlobalID(ctx context.Context, globalID uuid.UUID) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	ExistsOverlap(ctx context.Context, courtName string, start, end time.Time, excludeID *int64) (bool, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Court, error)
}

// GameTypeRepository интерфейс справочника типов игр
type GameTypeRepository interface {
	GetByName(ctx context.Context, name string) (*domain.GameType, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	GetByName(ctx context.Context, name string) (*domain.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
