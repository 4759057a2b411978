package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationResponse модель бронирования для API слоя.
// Ссылки представлены натуральными ключами (имена, телефон),
// внутренние идентификаторы наружу не отдаются.
type ReservationResponse struct {
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

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []*ReservationResponse
}

// FromDomainReservation конвертирует domain сущность в response модель
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
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

// FromDomainReservationList конвертирует список domain сущностей
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for _, res := range list {
		out = append(out, FromDomainReservation(res))
	}
	return &ReservationListResponse{Reservations: out}
}
