package list_by_phone

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// ReservationService интерфейс сервиса бронирований
type ReservationService interface {
	ListForPhone(ctx context.Context, phone string, onlyFuture bool) (*models.ReservationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
