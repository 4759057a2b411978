package delete_reservation

import (
	"context"

	"github.com/google/uuid"
)

// ReservationService интерфейс сервиса бронирований
type ReservationService interface {
	Delete(ctx context.Context, globalID uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
