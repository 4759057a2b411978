package update_court

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/service/courts/models"
)

// CourtService интерфейс сервиса кортов
type CourtService interface {
	Update(ctx context.Context, globalID uuid.UUID, name, surfaceName *string) (*models.CourtResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
