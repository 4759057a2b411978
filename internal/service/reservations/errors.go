package reservations

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	// или global_id отсутствует в запросе
	ErrReservationNotFound = fmt.Errorf("reservations: reservation not found: %w", domain.ErrNotFound)

	// ErrCourtNotFound возвращается при поиске по неизвестному имени корта.
	// Отличает "неизвестный ключ поиска" от "известный корт без бронирований"
	ErrCourtNotFound = fmt.Errorf("reservations: court not found: %w", domain.ErrNotFound)

	// ErrCustomerNotFound возвращается при поиске по неизвестному телефону
	ErrCustomerNotFound = fmt.Errorf("reservations: customer not found: %w", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("reservations: internal error: %w", domain.ErrInternal)
)
