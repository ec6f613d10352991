package utils

import (
	"fmt"
	"time"

	"car-rental-backend/internal/domain"
)

// RentalDurationUnits converts the elapsed time between start and end into
// whole billable units for the basis: integer division by the unit length,
// floored at a minimum of one unit. A rental returned a second after it
// opened still bills one full unit. The invoice renderer displays the same
// number, so billed and displayed duration always agree.
func RentalDurationUnits(basis domain.RentalBasis, start, end time.Time) int64 {
	units := int64(end.Sub(start)/time.Second) / basis.UnitSeconds()
	if units < 1 {
		units = 1
	}
	return units
}

// ComputeRentalAmountCents computes the bill amount for a closed rental:
// the per-unit rate of each rented vehicle under the rental's basis, times
// the unit count. Pure function of the rental's basis, start/end times and
// the vehicles' rates, so recomputing always yields the same amount.
func ComputeRentalAmountCents(rental *domain.Rental, vehicles []domain.Vehicle) (int64, error) {
	if rental.EndTime == nil {
		return 0, fmt.Errorf("rental %s is still open", rental.ID)
	}
	if !rental.Basis.Valid() {
		return 0, fmt.Errorf("rental %s has unknown basis %q", rental.ID, rental.Basis)
	}
	units := RentalDurationUnits(rental.Basis, rental.StartTime, *rental.EndTime)

	var total int64
	for i := range vehicles {
		total += rental.Basis.RateCents(&vehicles[i]) * units
	}
	return total, nil
}

// FormatCents renders an integer cent amount as a dollar string, e.g.
// 15000 -> "$150.00".
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
