package update_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	// или global_id отсутствует в запросе
	ErrReservationNotFound = fmt.Errorf("update_reservation: reservation not found: %w", domain.ErrNotFound)

	// ErrCourtNotFound возвращается, когда имя корта не резолвится
	ErrCourtNotFound = fmt.Errorf("update_reservation: court not found: %w", domain.ErrBadArgument)

	// ErrGameTypeNotFound возвращается, когда имя типа игры не резолвится
	ErrGameTypeNotFound = fmt.Errorf("update_reservation: game type not found: %w", domain.ErrBadArgument)

	// ErrCustomerNotFound возвращается, когда телефон или имя клиента
	// не резолвятся в существующую запись
	ErrCustomerNotFound = fmt.Errorf("update_reservation: customer not found: %w", domain.ErrBadArgument)

	// ErrInvalidTimeRange возвращается, когда начало не раньше конца
	ErrInvalidTimeRange = fmt.Errorf("update_reservation: start time is not before end time: %w", domain.ErrBadArgument)

	// ErrOverlap возвращается, когда новый интервал пересекается с чужим
	// бронированием на этом корте
	ErrOverlap = fmt.Errorf("update_reservation: reservation conflicts with existing reservation: %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = fmt.Errorf("update_reservation: internal error: %w", domain.ErrInternal)
)
