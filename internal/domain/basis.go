package domain

import (
	"fmt"
	"strings"
)

type RentalBasis string

const (
	RentalBasisHourly RentalBasis = "HOURLY"
	RentalBasisDaily  RentalBasis = "DAILY"
	RentalBasisWeekly RentalBasis = "WEEKLY"
)

// basisSpec ties a rental basis to its unit length, the label printed on
// invoices, and the vehicle rate the basis bills against. Billing and invoice
// rendering both read this table, so the billed and displayed duration can
// never disagree.
type basisSpec struct {
	unitSeconds int64
	unitLabel   string
	rateCents   func(v *Vehicle) int64
}

var basisSpecs = map[RentalBasis]basisSpec{
	RentalBasisHourly: {
		unitSeconds: 3600,
		unitLabel:   "hour(s)",
		rateCents:   func(v *Vehicle) int64 { return v.HourlyRateCents },
	},
	RentalBasisDaily: {
		unitSeconds: 24 * 3600,
		unitLabel:   "day(s)",
		rateCents:   func(v *Vehicle) int64 { return v.DailyRateCents },
	},
	RentalBasisWeekly: {
		unitSeconds: 7 * 24 * 3600,
		unitLabel:   "week(s)",
		rateCents:   func(v *Vehicle) int64 { return v.WeeklyRateCents },
	},
}

func (b RentalBasis) Valid() bool {
	_, ok := basisSpecs[b]
	return ok
}

// UnitSeconds returns the length of one billable unit for the basis.
func (b RentalBasis) UnitSeconds() int64 {
	return basisSpecs[b].unitSeconds
}

// UnitLabel returns the invoice label for the basis, e.g. "hour(s)".
func (b RentalBasis) UnitLabel() string {
	return basisSpecs[b].unitLabel
}

// RateCents returns the vehicle's per-unit price for the basis.
func (b RentalBasis) RateCents(v *Vehicle) int64 {
	return basisSpecs[b].rateCents(v)
}

// ParseRentalBasis maps user input such as "hourly" or "DAILY" to a basis.
func ParseRentalBasis(s string) (RentalBasis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HOURLY":
		return RentalBasisHourly, nil
	case "DAILY":
		return RentalBasisDaily, nil
	case "WEEKLY":
		return RentalBasisWeekly, nil
	}
	return "", fmt.Errorf("unknown rental basis %q (want hourly, daily or weekly)", s)
}
