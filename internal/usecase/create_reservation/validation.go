package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Порядок времени проверяется позже, после резолва ссылок:
// сначала отбрасываются запросы с отсутствующими обязательными полями.
func validateRequest(req *Request) error {
	if req.CourtName == "" {
		return fmt.Errorf("%w: court name is missing in the request", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: customer phone is missing in the request", ErrInvalidInput)
	}

	if req.GameTypeName == "" {
		return fmt.Errorf("%w: game type is missing in the request", ErrInvalidInput)
	}

	if !domain.IsValidPhone(req.Phone) {
		return fmt.Errorf("%w: phone %q does not match the expected format", ErrInvalidInput, req.Phone)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidInput)
	}

	return nil
}

// resolveCustomerName возвращает имя для нового клиента:
// непустая подсказка из запроса либо плейсхолдер
func resolveCustomerName(nameHint *string) string {
	if nameHint != nil && *nameHint != "" {
		return *nameHint
	}
	return domain.UnknownCustomerName
}
