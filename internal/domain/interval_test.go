package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalOverlaps(t *testing.T) {
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	at := func(offsetHours int) time.Time {
		return base.Add(time.Duration(offsetHours) * time.Hour)
	}

	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals",
			a:    Interval{Start: at(0), End: at(2)},
			b:    Interval{Start: at(0), End: at(2)},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Interval{Start: at(0), End: at(2)},
			b:    Interval{Start: at(1), End: at(3)},
			want: true,
		},
		{
			name: "containment",
			a:    Interval{Start: at(0), End: at(4)},
			b:    Interval{Start: at(1), End: at(2)},
			want: true,
		},
		{
			name: "touching endpoints are not an overlap",
			a:    Interval{Start: at(0), End: at(2)},
			b:    Interval{Start: at(2), End: at(4)},
			want: false,
		},
		{
			name: "touching endpoints reversed",
			a:    Interval{Start: at(2), End: at(4)},
			b:    Interval{Start: at(0), End: at(2)},
			want: false,
		},
		{
			name: "disjoint",
			a:    Interval{Start: at(0), End: at(1)},
			b:    Interval{Start: at(3), End: at(4)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestIntervalIsOrdered(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.True(t, Interval{Start: start, End: start.Add(time.Minute)}.IsOrdered())
	assert.False(t, Interval{Start: start, End: start}.IsOrdered())
	assert.False(t, Interval{Start: start, End: start.Add(-time.Minute)}.IsOrdered())
}

func TestIntervalMinutes(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(90), Interval{Start: start, End: start.Add(90 * time.Minute)}.Minutes())
	assert.Equal(t, int64(1), Interval{Start: start, End: start.Add(119 * time.Second)}.Minutes())
	assert.Equal(t, int64(4320), Interval{Start: start, End: start.Add(72 * time.Hour)}.Minutes())
}
