package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a person owning reservations, identified externally
// by a unique phone number. Created implicitly the first time a new phone
// number appears in a reservation request.
type Customer struct {
	ID       int64
	GlobalID uuid.UUID
	Name     string
	Phone    string

	CreatedAt time.Time
}

// Reservation represents a booked time interval on one court, for one
// customer, under one game type. Price is derived, never stored.
type Reservation struct {
	ID        int64
	GlobalID  uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Court     *Court
	GameType  *GameType
	Customer  *Customer

	// Price is recomputed on every read from the current surface rate,
	// so rate changes apply to existing reservations as well.
	Price float64

	CreatedAt time.Time
}

// Interval returns the reservation's half-open time interval [start, end).
func (r *Reservation) Interval() Interval {
	return Interval{Start: r.StartTime, End: r.EndTime}
}
