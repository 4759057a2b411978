package domain

import "time"

// Interval is a half-open time range [Start, End). The end instant itself is
// not included, so adjacent bookings may share a boundary instant without
// conflicting.
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsOrdered reports whether Start is strictly before End.
func (i Interval) IsOrdered() bool {
	return i.Start.Before(i.End)
}

// Minutes returns the interval length as a whole-minute count.
func (i Interval) Minutes() int64 {
	return int64(i.End.Sub(i.Start) / time.Minute)
}

// Overlaps reports whether two half-open intervals intersect.
// Touching endpoints (a.End == b.Start) are not an overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}
