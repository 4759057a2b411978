package delete_court

import (
	"context"

	"github.com/google/uuid"
)

// CourtService интерфейс сервиса кортов
type CourtService interface {
	Delete(ctx context.Context, globalID uuid.UUID, name string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
