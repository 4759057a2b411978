package courts

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrCourtNotFound возвращается, когда корт не найден по id или имени
	ErrCourtNotFound = fmt.Errorf("courts: court not found: %w", domain.ErrNotFound)

	// ErrSurfaceNotFound возвращается, когда имя покрытия не резолвится
	ErrSurfaceNotFound = fmt.Errorf("courts: surface not found: %w", domain.ErrNotFound)

	// ErrCourtExists возвращается при попытке занять существующее имя корта
	ErrCourtExists = fmt.Errorf("courts: court name already exists: %w", domain.ErrConflict)

	// ErrCourtInUse возвращается при удалении корта, на который ссылаются
	// не удаленные бронирования
	ErrCourtInUse = fmt.Errorf("courts: court is used in reservations: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("courts: invalid input data: %w", domain.ErrBadArgument)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("courts: internal error: %w", domain.ErrInternal)
)
