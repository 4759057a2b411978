package list_courts

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/service/courts/models"
)

// CourtService интерфейс сервиса кортов
type CourtService interface {
	List(ctx context.Context) (*models.CourtListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
