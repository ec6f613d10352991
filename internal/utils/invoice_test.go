package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"car-rental-backend/internal/domain"
)

func TestRenderInvoice(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)
	generated := time.Date(2024, 1, 1, 13, 0, 5, 0, time.UTC)

	rental := &domain.Rental{
		ID:          "R0001",
		CustomerID:  "CUST0001",
		VehicleIDs:  []string{"C001", "C002"},
		Basis:       domain.RentalBasisHourly,
		StartTime:   start,
		EndTime:     &end,
		AmountCents: 5400,
		Status:      domain.RentalStatusClosed,
	}
	bill := &domain.Bill{
		ID:          "B0001",
		RentalID:    "R0001",
		Reference:   "6e1f2a60-0000-0000-0000-000000000000",
		AmountCents: 5400,
		GeneratedAt: generated,
	}
	customer := &domain.Customer{ID: "CUST0001", Name: "Jane Smith"}
	vehicles := []domain.Vehicle{
		{ID: "C001", Model: "Toyota Camry"},
		{ID: "C002", Model: "Honda Civic"},
	}

	t.Run("Unpaid invoice layout", func(t *testing.T) {
		got := RenderInvoice(bill, rental, customer, vehicles)

		want := "======= INVOICE =======\n" +
			"Bill ID: B0001\n" +
			"Customer: Jane Smith\n" +
			"\nRental Details:\n" +
			"- Rental ID: R0001\n" +
			"- Rental Basis: hourly\n" +
			"- Duration: 3 hour(s)\n" +
			"- Start Time: 2024-01-01 10:00:00\n" +
			"- End Time: 2024-01-01 13:00:00\n" +
			"\nVehicles Rented:\n" +
			"- Vehicle ID: C001 | Model: Toyota Camry\n" +
			"- Vehicle ID: C002 | Model: Honda Civic\n" +
			"\nTotal Amount: $54.00\n" +
			"Reference: 6e1f2a60-0000-0000-0000-000000000000\n" +
			"Status: Unpaid\n" +
			"\nGenerated on: 2024-01-01 13:00:05\n" +
			"=======================\n"
		assert.Equal(t, want, got)
	})

	t.Run("Paid status", func(t *testing.T) {
		paid := *bill
		paid.Paid = true
		got := RenderInvoice(&paid, rental, customer, vehicles)
		assert.Contains(t, got, "Status: Paid\n")
		assert.NotContains(t, got, "Unpaid")
	})

	t.Run("Displayed duration matches billed duration", func(t *testing.T) {
		// One second on a daily basis still reads 1 day(s), matching the
		// minimum-unit billing floor.
		shortEnd := start.Add(time.Second)
		short := *rental
		short.Basis = domain.RentalBasisDaily
		short.EndTime = &shortEnd
		got := RenderInvoice(bill, &short, customer, vehicles)
		assert.Contains(t, got, "- Duration: 1 day(s)\n")
	})
}
