package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRentRecord_VestedAt(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	record := &RentRecord{
		TokenID:         1,
		RentToken:       "USDR",
		DepositAmount:   big.NewInt(1000),
		ClaimedAmount:   big.NewInt(0),
		UnclaimedAmount: big.NewInt(0),
		DepositTime:     start,
		EndTime:         start.Add(100 * time.Second),
	}

	t.Run("Nothing vested at deposit time", func(t *testing.T) {
		assert.Equal(t, "0", record.VestedAt(start).String())
	})

	t.Run("Half vested at midpoint", func(t *testing.T) {
		assert.Equal(t, "500", record.VestedAt(start.Add(50*time.Second)).String())
	})

	t.Run("Rounds down", func(t *testing.T) {
		// 1000 * 33 / 100 = 330
		assert.Equal(t, "330", record.VestedAt(start.Add(33*time.Second)).String())

		odd := &RentRecord{
			DepositAmount: big.NewInt(1001),
			DepositTime:   start,
			EndTime:       start.Add(3 * time.Second),
		}
		// 1001 * 1 / 3 = 333.66 -> 333
		assert.Equal(t, "333", odd.VestedAt(start.Add(1*time.Second)).String())
	})

	t.Run("Fully vested exactly at end time", func(t *testing.T) {
		assert.Equal(t, "1000", record.VestedAt(start.Add(100*time.Second)).String())
	})

	t.Run("Fully vested after end time", func(t *testing.T) {
		assert.Equal(t, "1000", record.VestedAt(start.Add(24*time.Hour)).String())
	})

	t.Run("Before deposit time", func(t *testing.T) {
		assert.Equal(t, "0", record.VestedAt(start.Add(-time.Second)).String())
	})

	t.Run("Zero-valued record", func(t *testing.T) {
		fresh := NewRentRecord(7)
		assert.Equal(t, "0", fresh.VestedAt(start).String())
	})

	t.Run("No overflow for 18-decimal supplies", func(t *testing.T) {
		supply, ok := new(big.Int).SetString("1000000000000000000000000000", 10) // 1e27
		assert.True(t, ok)
		wide := &RentRecord{
			DepositAmount: supply,
			DepositTime:   start,
			EndTime:       start.Add(365 * 24 * time.Hour),
		}
		half := wide.VestedAt(start.Add(365 * 12 * time.Hour))
		expected := new(big.Int).Quo(supply, big.NewInt(2))
		assert.Equal(t, expected.String(), half.String())
	})
}

func TestRentRecord_ClaimableAt(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	record := &RentRecord{
		DepositAmount:   big.NewInt(1500),
		ClaimedAmount:   big.NewInt(200),
		UnclaimedAmount: big.NewInt(500),
		DepositTime:     start,
		EndTime:         start.Add(100 * time.Second),
	}

	t.Run("Unclaimed minus claimed plus vested", func(t *testing.T) {
		// vested at t+50 = 750; 500 + 750 - 200 = 1050
		assert.Equal(t, "1050", record.ClaimableAt(start.Add(50*time.Second)).String())
	})

	t.Run("Monotonically non-decreasing over time", func(t *testing.T) {
		prev := record.ClaimableAt(start)
		for s := 1; s <= 120; s += 7 {
			cur := record.ClaimableAt(start.Add(time.Duration(s) * time.Second))
			assert.True(t, cur.Cmp(prev) >= 0, "claimable decreased at t+%ds", s)
			prev = cur
		}
	})

	t.Run("Query does not mutate the record", func(t *testing.T) {
		record.ClaimableAt(start.Add(50 * time.Second))
		record.ClaimableAt(start.Add(50 * time.Second))
		assert.Equal(t, "1500", record.DepositAmount.String())
		assert.Equal(t, "200", record.ClaimedAmount.String())
		assert.Equal(t, "500", record.UnclaimedAmount.String())
	})
}
