package update_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на частичное обновление бронирования.
// Все поля кроме GlobalID опциональны: nil означает "поле не передано",
// присутствие поля отличается от пустого значения.
type Request struct {
	GlobalID     uuid.UUID
	CourtName    *string    // Новый корт (натуральный ключ)
	GameTypeName *string    // Новый тип игры
	Phone        *string    // Перепривязка клиента по телефону
	CustomerName *string    // Перепривязка клиента по имени
	StartTime    *time.Time // Новое начало интервала
	EndTime      *time.Time // Новый конец интервала
}

// Response модель ответа с обновленным бронированием
type Response struct {
	GlobalID     uuid.UUID
	CourtName    string
	GameTypeName string
	StartTime    time.Time
	EndTime      time.Time
	Phone        string
	CustomerName string
	Price        float64
	CreatedAt    time.Time
}

func newResponse(res *domain.Reservation) *Response {
	return &Response{
		GlobalID:     res.GlobalID,
		CourtName:    res.Court.Name,
		GameTypeName: res.GameType.Name,
		StartTime:    res.StartTime,
		EndTime:      res.EndTime,
		Phone:        res.Customer.Phone,
		CustomerName: res.Customer.Name,
		Price:        res.Price,
		CreatedAt:    res.CreatedAt,
	}
}
