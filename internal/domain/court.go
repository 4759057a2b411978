package domain

import (
	"time"

	"github.com/google/uuid"
)

// Surface represents a rate-bearing category assigned to courts.
// The per-minute rate is the base of every reservation price.
type Surface struct {
	ID             int64
	GlobalID       uuid.UUID
	Name           string
	PricePerMinute int64

	CreatedAt time.Time
}

// Court represents a bookable physical resource with a name and a surface type
type Court struct {
	ID       int64
	GlobalID uuid.UUID
	Name     string
	Surface  *Surface

	CreatedAt time.Time
}

// GameType represents an activity category with a price multiplier.
// Read-only reference data, seeded outside the service code.
type GameType struct {
	ID              int64
	Name            string
	PriceMultiplier float64
}
