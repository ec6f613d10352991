package jobs

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/utils"
)

// OverdueRental is one open rental that has run past the configured number
// of its own basis units.
type OverdueRental struct {
	Rental       domain.Rental
	ElapsedUnits int64
}

// OverdueRentals lists open rentals whose elapsed time at now exceeds
// report.overdue_after_units. Read-only; rentals are never closed or
// mutated by the report.
func (jr *JobRunner) OverdueRentals(ctx context.Context) ([]OverdueRental, error) {
	open, err := jr.rentals.ListOpenRentals(ctx)
	if err != nil {
		return nil, err
	}

	threshold := jr.config.Report.OverdueAfterUnits
	now := jr.now()

	var overdue []OverdueRental
	for _, rental := range open {
		if now.Before(rental.StartTime) {
			// Backdated sessions can hold future-dated rentals; skip them.
			continue
		}
		units := utils.RentalDurationUnits(rental.Basis, rental.StartTime, now)
		if units > threshold {
			overdue = append(overdue, OverdueRental{Rental: rental, ElapsedUnits: units})
		}
	}
	return overdue, nil
}

// ReportOverdueRentals runs the overdue scan and logs each hit. Registered
// with the scheduler for long-running desk sessions.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		overdue, err := jr.OverdueRentals(context.Background())
		if err != nil {
			logger.Error("Failed to scan for overdue rentals", "error", err)
			return
		}
		for _, o := range overdue {
			logger.Warn("Rental overdue",
				"rental_id", o.Rental.ID,
				"customer_id", o.Rental.CustomerID,
				"basis", o.Rental.Basis,
				"elapsed_units", o.ElapsedUnits)
		}
		logger.Info("Overdue rental scan finished", "overdue", len(overdue))
	})
}
