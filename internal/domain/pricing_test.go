package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePrice(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("three day reservation", func(t *testing.T) {
		end := start.Add(72 * time.Hour) // 4320 minutes

		price, err := ComputePrice(100, 1.0, start, end)

		require.NoError(t, err)
		assert.Equal(t, float64(432000), price)
	})

	t.Run("multiplier scales the price", func(t *testing.T) {
		end := start.Add(60 * time.Minute)

		price, err := ComputePrice(10, 1.5, start, end)

		require.NoError(t, err)
		assert.Equal(t, float64(900), price)
	})

	t.Run("duration truncates to whole minutes", func(t *testing.T) {
		end := start.Add(90 * time.Second)

		price, err := ComputePrice(100, 1.0, start, end)

		require.NoError(t, err)
		assert.Equal(t, float64(100), price)
	})

	t.Run("non-positive rate", func(t *testing.T) {
		_, err := ComputePrice(0, 1.0, start, start.Add(time.Hour))

		assert.ErrorIs(t, err, ErrInvariantViolation)
	})

	t.Run("non-positive multiplier", func(t *testing.T) {
		_, err := ComputePrice(100, 0, start, start.Add(time.Hour))

		assert.ErrorIs(t, err, ErrInvariantViolation)
	})

	t.Run("sub-minute duration", func(t *testing.T) {
		_, err := ComputePrice(100, 1.0, start, start.Add(30*time.Second))

		assert.ErrorIs(t, err, ErrInvariantViolation)
	})

	t.Run("reversed interval", func(t *testing.T) {
		_, err := ComputePrice(100, 1.0, start, start.Add(-time.Hour))

		assert.ErrorIs(t, err, ErrInvariantViolation)
	})
}

func TestPriceOf(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	fullyLinked := func() *Reservation {
		return &Reservation{
			StartTime: start,
			EndTime:   start.Add(2 * time.Hour),
			Court: &Court{
				Name:    "Court 1",
				Surface: &Surface{Name: "Dirt", PricePerMinute: 100},
			},
			GameType: &GameType{Name: "Doubles", PriceMultiplier: 1.5},
		}
	}

	t.Run("fully linked reservation", func(t *testing.T) {
		price, err := PriceOf(fullyLinked())

		require.NoError(t, err)
		assert.Equal(t, float64(18000), price)
	})

	t.Run("missing surface", func(t *testing.T) {
		res := fullyLinked()
		res.Court.Surface = nil

		_, err := PriceOf(res)

		assert.ErrorIs(t, err, ErrInvariantViolation)
	})

	t.Run("missing game type", func(t *testing.T) {
		res := fullyLinked()
		res.GameType = nil

		_, err := PriceOf(res)

		assert.ErrorIs(t, err, ErrInvariantViolation)
	})
}
