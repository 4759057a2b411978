package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Ошибки use case оборачивают один из видов domain, чтобы API слой
// транслировал их в HTTP статус через errors.Is.
var (
	// ErrInvalidInput возвращается при отсутствии обязательного поля
	// или некорректном формате телефона
	ErrInvalidInput = fmt.Errorf("create_reservation: invalid input data: %w", domain.ErrBadArgument)

	// ErrCourtNotFound возвращается, когда имя корта не резолвится
	ErrCourtNotFound = fmt.Errorf("create_reservation: court not found: %w", domain.ErrBadArgument)

	// ErrGameTypeNotFound возвращается, когда имя типа игры не резолвится
	ErrGameTypeNotFound = fmt.Errorf("create_reservation: game type not found: %w", domain.ErrBadArgument)

	// ErrInvalidTimeRange возвращается, когда начало не раньше конца
	ErrInvalidTimeRange = fmt.Errorf("create_reservation: start time is not before end time: %w", domain.ErrBadArgument)

	// ErrOverlap возвращается, когда интервал пересекается с существующим
	// бронированием на этом корте
	ErrOverlap = fmt.Errorf("create_reservation: reservation conflicts with existing reservation: %w", domain.ErrConflict)

	// ErrPhoneConflict возвращается, когда конкурентная вставка клиента
	// с тем же телефоном выиграла гонку
	ErrPhoneConflict = fmt.Errorf("create_reservation: customer phone already registered: %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = fmt.Errorf("create_reservation: internal error: %w", domain.ErrInternal)
)
