package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-rental-backend/internal/domain"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return parsed
}

func TestRentalDurationUnits(t *testing.T) {
	start := ts(t, "2024-01-01 10:00:00")

	tests := []struct {
		name     string
		basis    domain.RentalBasis
		end      string
		expected int64
	}{
		{"three full hours", domain.RentalBasisHourly, "2024-01-01 13:00:00", 3},
		{"partial hour floors", domain.RentalBasisHourly, "2024-01-01 13:59:00", 3},
		{"one second bills one hour", domain.RentalBasisHourly, "2024-01-01 10:00:01", 1},
		{"zero elapsed bills one hour", domain.RentalBasisHourly, "2024-01-01 10:00:00", 1},
		{"one second bills one day", domain.RentalBasisDaily, "2024-01-01 10:00:01", 1},
		{"two full days", domain.RentalBasisDaily, "2024-01-03 10:00:00", 2},
		{"just under a day floors to one", domain.RentalBasisDaily, "2024-01-02 09:59:59", 1},
		{"one second bills one week", domain.RentalBasisWeekly, "2024-01-01 10:00:01", 1},
		{"two full weeks", domain.RentalBasisWeekly, "2024-01-15 10:00:00", 2},
		{"thirteen days is one week", domain.RentalBasisWeekly, "2024-01-14 09:00:00", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			units := RentalDurationUnits(tt.basis, start, ts(t, tt.end))
			assert.Equal(t, tt.expected, units)
		})
	}

	t.Run("sub-second remainders are truncated", func(t *testing.T) {
		end := start.Add(2*time.Hour - time.Nanosecond)
		assert.Equal(t, int64(1), RentalDurationUnits(domain.RentalBasisHourly, start, end))
	})

	t.Run("long horizons stay exact", func(t *testing.T) {
		end := start.Add(200 * 365 * 24 * time.Hour)
		assert.Equal(t, int64(200*365*24), RentalDurationUnits(domain.RentalBasisHourly, start, end))
	})
}

func TestComputeRentalAmountCents(t *testing.T) {
	camry := domain.Vehicle{ID: "C001", Model: "Toyota Camry", HourlyRateCents: 1000, DailyRateCents: 5000, WeeklyRateCents: 30000}
	civic := domain.Vehicle{ID: "C002", Model: "Honda Civic", HourlyRateCents: 800, DailyRateCents: 4500, WeeklyRateCents: 28000}

	closedRental := func(basis domain.RentalBasis, start, end string) *domain.Rental {
		endTime := ts(t, end)
		return &domain.Rental{
			ID:         "R0001",
			Basis:      basis,
			StartTime:  ts(t, start),
			EndTime:    &endTime,
			VehicleIDs: []string{"C001", "C002"},
			Status:     domain.RentalStatusClosed,
		}
	}

	t.Run("Three hours across two vehicles", func(t *testing.T) {
		rental := closedRental(domain.RentalBasisHourly, "2024-01-01 10:00:00", "2024-01-01 13:00:00")
		amount, err := ComputeRentalAmountCents(rental, []domain.Vehicle{camry, civic})
		require.NoError(t, err)
		assert.Equal(t, int64(3*(1000+800)), amount)
	})

	t.Run("Minimum one unit per basis", func(t *testing.T) {
		for _, basis := range []domain.RentalBasis{domain.RentalBasisHourly, domain.RentalBasisDaily, domain.RentalBasisWeekly} {
			rental := closedRental(basis, "2024-01-01 00:00:00", "2024-01-01 00:00:01")
			amount, err := ComputeRentalAmountCents(rental, []domain.Vehicle{camry})
			require.NoError(t, err)
			assert.Equal(t, basis.RateCents(&camry), amount, "basis %s", basis)
		}
	})

	t.Run("Idempotent for a fixed rental", func(t *testing.T) {
		rental := closedRental(domain.RentalBasisDaily, "2024-01-01 00:00:00", "2024-01-03 12:00:00")
		first, err := ComputeRentalAmountCents(rental, []domain.Vehicle{camry, civic})
		require.NoError(t, err)
		second, err := ComputeRentalAmountCents(rental, []domain.Vehicle{camry, civic})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Open rental is rejected", func(t *testing.T) {
		rental := closedRental(domain.RentalBasisHourly, "2024-01-01 10:00:00", "2024-01-01 13:00:00")
		rental.EndTime = nil
		_, err := ComputeRentalAmountCents(rental, []domain.Vehicle{camry})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "still open")
	})

	t.Run("Unknown basis is rejected", func(t *testing.T) {
		rental := closedRental("MONTHLY", "2024-01-01 10:00:00", "2024-01-01 13:00:00")
		_, err := ComputeRentalAmountCents(rental, []domain.Vehicle{camry})
		assert.Error(t, err)
	})

	t.Run("No vehicles means zero amount", func(t *testing.T) {
		rental := closedRental(domain.RentalBasisHourly, "2024-01-01 10:00:00", "2024-01-01 13:00:00")
		amount, err := ComputeRentalAmountCents(rental, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), amount)
	})
}

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents    int64
		expected string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{50, "$0.50"},
		{15000, "$150.00"},
		{15005, "$150.05"},
		{123456, "$1234.56"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCents(tt.cents))
		})
	}
}
