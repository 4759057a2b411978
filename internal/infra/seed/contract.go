package seed

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	courtModels "github.com/m04kA/SMC-ReservationService/internal/service/courts/models"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// SurfaceRepository контракт репозитория покрытий
type SurfaceRepository interface {
	Create(ctx context.Context, s *domain.Surface) (*domain.Surface, error)
}

// GameTypeRepository контракт репозитория типов игр
type GameTypeRepository interface {
	Seed(ctx context.Context, name string, priceMultiplier float64) error
}

// CustomerRepository контракт репозитория клиентов
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

// CourtService контракт сервиса кортов
type CourtService interface {
	Create(ctx context.Context, name, surfaceName string) (*courtModels.CourtResponse, error)
}

// CreateReservationUseCase контракт use case создания бронирования
type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
