package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-rental-backend/internal/config"
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository/memory"
	"car-rental-backend/internal/service"
)

type jobFixture struct {
	rentals  service.RentalService
	runner   *JobRunner
	customer string
}

func newJobFixture(t *testing.T, overdueAfter int64) *jobFixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	for _, id := range []string{"V001", "V002", "V003"} {
		require.NoError(t, store.Vehicles().Create(ctx, &domain.Vehicle{
			ID:              id,
			Model:           "Toyota Camry",
			HourlyRateCents: 1000,
			DailyRateCents:  5000,
			WeeklyRateCents: 30000,
			Available:       true,
		}))
	}

	customers := service.NewCustomerService(store.Customers())
	customer, err := customers.RegisterCustomer(ctx, "John Doe", "john@example.com", "555-0100")
	require.NoError(t, err)

	rentals := service.NewRentalService(store)

	cfg := config.Default()
	cfg.Report.OverdueAfterUnits = overdueAfter

	return &jobFixture{
		rentals:  rentals,
		runner:   NewJobRunner(rentals, cfg),
		customer: customer.ID,
	}
}

func TestOverdueRentals(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Flags rentals past the threshold", func(t *testing.T) {
		f := newJobFixture(t, 1)
		f.runner.now = func() time.Time { return now }

		late, err := f.rentals.OpenRental(ctx, f.customer, 1, domain.RentalBasisHourly, now.Add(-3*time.Hour))
		require.NoError(t, err)
		_, err = f.rentals.OpenRental(ctx, f.customer, 1, domain.RentalBasisHourly, now.Add(-30*time.Minute))
		require.NoError(t, err)

		overdue, err := f.runner.OverdueRentals(ctx)
		require.NoError(t, err)
		require.Len(t, overdue, 1)
		assert.Equal(t, late.ID, overdue[0].Rental.ID)
		assert.Equal(t, int64(3), overdue[0].ElapsedUnits)
	})

	t.Run("Units follow each rental's own basis", func(t *testing.T) {
		f := newJobFixture(t, 1)
		f.runner.now = func() time.Time { return now }

		// Three hours in: overdue on an hourly basis, not on a daily one.
		_, err := f.rentals.OpenRental(ctx, f.customer, 1, domain.RentalBasisDaily, now.Add(-3*time.Hour))
		require.NoError(t, err)

		overdue, err := f.runner.OverdueRentals(ctx)
		require.NoError(t, err)
		assert.Empty(t, overdue)
	})

	t.Run("Closed rentals are not reported", func(t *testing.T) {
		f := newJobFixture(t, 1)
		f.runner.now = func() time.Time { return now }

		rental, err := f.rentals.OpenRental(ctx, f.customer, 1, domain.RentalBasisHourly, now.Add(-5*time.Hour))
		require.NoError(t, err)
		_, err = f.rentals.CloseRental(ctx, rental.ID, now)
		require.NoError(t, err)

		overdue, err := f.runner.OverdueRentals(ctx)
		require.NoError(t, err)
		assert.Empty(t, overdue)
	})

	t.Run("Future-dated rentals are skipped", func(t *testing.T) {
		f := newJobFixture(t, 1)
		f.runner.now = func() time.Time { return now }

		_, err := f.rentals.OpenRental(ctx, f.customer, 1, domain.RentalBasisHourly, now.Add(2*time.Hour))
		require.NoError(t, err)

		overdue, err := f.runner.OverdueRentals(ctx)
		require.NoError(t, err)
		assert.Empty(t, overdue)
	})
}
