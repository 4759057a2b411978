package models

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CourtResponse модель корта для API слоя
type CourtResponse struct {
	GlobalID    uuid.UUID
	Name        string
	SurfaceName string
}

// CourtListResponse список кортов
type CourtListResponse struct {
	Courts []*CourtResponse
}

// FromDomainCourt конвертирует domain сущность в response модель
func FromDomainCourt(c *domain.Court) *CourtResponse {
	return &CourtResponse{
		GlobalID:    c.GlobalID,
		Name:        c.Name,
		SurfaceName: c.Surface.Name,
	}
}

// FromDomainCourtList конвертирует список domain сущностей
func FromDomainCourtList(list []*domain.Court) *CourtListResponse {
	out := make([]*CourtResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromDomainCourt(c))
	}
	return &CourtListResponse{Courts: out}
}
