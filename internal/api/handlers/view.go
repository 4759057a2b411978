package handlers

import (
	"time"

	courtModels "github.com/m04kA/SMC-ReservationService/internal/service/courts/models"
	reservationModels "github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// TimeFormat формат времени в API: "2006-01-02 15:04:05"
const TimeFormat = "2006-01-02 15:04:05"

// ReservationView HTTP представление бронирования
type ReservationView struct {
	GlobalID  string  `json:"globalId"`
	Court     string  `json:"court"`
	GameType  string  `json:"gameType"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Phone     string  `json:"phone"`
	Customer  string  `json:"customer"`
	Price     float64 `json:"price"`
	Created   string  `json:"created"`
}

// CourtView HTTP представление корта
type CourtView struct {
	GlobalID string `json:"globalId"`
	Name     string `json:"name"`
	Surface  string `json:"surface"`
}

// FromReservationModel конвертирует response модель сервиса в HTTP представление
func FromReservationModel(m *reservationModels.ReservationResponse) *ReservationView {
	return &ReservationView{
		GlobalID:  m.GlobalID.String(),
		Court:     m.CourtName,
		GameType:  m.GameTypeName,
		StartTime: m.StartTime.Format(TimeFormat),
		EndTime:   m.EndTime.Format(TimeFormat),
		Phone:     m.Phone,
		Customer:  m.CustomerName,
		Price:     m.Price,
		Created:   m.CreatedAt.Format(time.RFC3339),
	}
}

// FromReservationModelList конвертирует список response моделей
func FromReservationModelList(m *reservationModels.ReservationListResponse) []*ReservationView {
	out := make([]*ReservationView, 0, len(m.Reservations))
	for _, res := range m.Reservations {
		out = append(out, FromReservationModel(res))
	}
	return out
}

// FromCourtModel конвертирует response модель сервиса в HTTP представление
func FromCourtModel(m *courtModels.CourtResponse) *CourtView {
	return &CourtView{
		GlobalID: m.GlobalID.String(),
		Name:     m.Name,
		Surface:  m.SurfaceName,
	}
}

// FromCourtModelList конвертирует список response моделей
func FromCourtModelList(m *courtModels.CourtListResponse) []*CourtView {
	out := make([]*CourtView, 0, len(m.Courts))
	for _, c := range m.Courts {
		out = append(out, FromCourtModel(c))
	}
	return out
}
