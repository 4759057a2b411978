package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Court     string  `json:"court"`
	GameType  string  `json:"gameType"`
	StartTime string  `json:"startTime"` // "2025-05-01 10:00:00"
	EndTime   string  `json:"endTime"`
	Phone     string  `json:"phone"`
	Customer  *string `json:"customer,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	req := &createReservation.Request{
		CourtName:    r.Court,
		GameTypeName: r.GameType,
		Phone:        r.Phone,
		CustomerName: r.Customer,
	}

	if r.StartTime != "" {
		startTime, err := time.Parse(handlers.TimeFormat, r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid startTime: %v", err)
		}
		req.StartTime = startTime
	}

	if r.EndTime != "" {
		endTime, err := time.Parse(handlers.TimeFormat, r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("invalid endTime: %v", err)
		}
		req.EndTime = endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP представление
func FromUseCaseResponse(resp *createReservation.Response) *handlers.ReservationView {
	return &handlers.ReservationView{
		GlobalID:  resp.GlobalID.String(),
		Court:     resp.CourtName,
		GameType:  resp.GameTypeName,
		StartTime: resp.StartTime.Format(handlers.TimeFormat),
		EndTime:   resp.EndTime.Format(handlers.TimeFormat),
		Phone:     resp.Phone,
		Customer:  resp.CustomerName,
		Price:     resp.Price,
		Created:   resp.CreatedAt.Format(time.RFC3339),
	}
}
