package domain

import "time"

// Vehicle is one unit of the fleet. Rates are snapshots in integer cents;
// all billing math runs on these fields.
//
// A vehicle is either available (no active rental fields set) or held by
// exactly one open rental (all three active fields set). The rental service
// maintains that invariant.
type Vehicle struct {
	ID              string `json:"id"`
	Model           string `json:"model"`
	HourlyRateCents int64  `json:"hourly_rate_cents"`
	DailyRateCents  int64  `json:"daily_rate_cents"`
	WeeklyRateCents int64  `json:"weekly_rate_cents"`

	Available       bool        `json:"available"`
	ActiveRentalID  string      `json:"active_rental_id,omitempty"`
	ActiveBasis     RentalBasis `json:"active_basis,omitempty"`
	RentalStartTime *time.Time  `json:"rental_start_time,omitempty"`
}
