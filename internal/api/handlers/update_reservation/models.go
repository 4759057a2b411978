package update_reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	updateReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model.
// Все поля кроме globalId опциональны: отсутствие поля означает "не менять".
type UpdateReservationRequest struct {
	GlobalID  string  `json:"globalId"`
	Court     *string `json:"court,omitempty"`
	GameType  *string `json:"gameType,omitempty"`
	StartTime *string `json:"startTime,omitempty"` // "2025-05-01 10:00:00"
	EndTime   *string `json:"endTime,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Customer  *string `json:"customer,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest() (*updateReservation.Request, error) {
	globalID, err := uuid.Parse(r.GlobalID)
	if err != nil {
		return nil, fmt.Errorf("invalid globalId: %v", err)
	}

	req := &updateReservation.Request{
		GlobalID:     globalID,
		CourtName:    r.Court,
		GameTypeName: r.GameType,
		Phone:        r.Phone,
		CustomerName: r.Customer,
	}

	if r.StartTime != nil {
		startTime, err := time.Parse(handlers.TimeFormat, *r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid startTime: %v", err)
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := time.Parse(handlers.TimeFormat, *r.EndTime)
		if err != nil {
			return nil, fmt.Errorf("invalid endTime: %v", err)
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP представление
func FromUseCaseResponse(resp *updateReservation.Response) *handlers.ReservationView {
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
