package domain

import (
	"fmt"
	"time"
)

// ComputePrice derives a reservation price from the surface rate, the game
// type multiplier and the whole-minute duration of [start, end).
//
// A non-positive rate, multiplier or duration means the reservation is
// linked to corrupted or incompletely-linked records (e.g. a concurrently
// deleted court); that is a data-integrity bug, not a caller error, so it
// surfaces as ErrInvariantViolation.
func ComputePrice(ratePerMinute int64, multiplier float64, start, end time.Time) (float64, error) {
	durationMinutes := int64(end.Sub(start) / time.Minute)

	if ratePerMinute <= 0 || multiplier <= 0 || durationMinutes <= 0 {
		return 0, fmt.Errorf("%w: cannot compute price: rate=%d multiplier=%v duration=%dm",
			ErrInvariantViolation, ratePerMinute, multiplier, durationMinutes)
	}

	return float64(ratePerMinute) * multiplier * float64(durationMinutes), nil
}

// PriceOf recomputes the price of a fully linked reservation.
func PriceOf(r *Reservation) (float64, error) {
	if r.Court == nil || r.Court.Surface == nil || r.GameType == nil {
		return 0, fmt.Errorf("%w: reservation %s is not fully linked", ErrInvariantViolation, r.GlobalID)
	}
	return ComputePrice(r.Court.Surface.PricePerMinute, r.GameType.PriceMultiplier, r.StartTime, r.EndTime)
}
