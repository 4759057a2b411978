package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модель запроса на создание бронирования.
// GlobalID клиентом не передается: идентификатор назначается сервисом.
type Request struct {
	CourtName    string     // Имя корта (натуральный ключ)
	GameTypeName string     // Имя типа игры
	StartTime    time.Time  // Начало интервала
	EndTime      time.Time  // Конец интервала (не включается)
	Phone        string     // Телефон клиента
	CustomerName *string    // Имя клиента (только для нового телефона)
}

// Response модель ответа с созданным бронированием
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
