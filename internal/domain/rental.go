package domain

import "time"

type RentalStatus string

const (
	RentalStatusOpen   RentalStatus = "OPEN"
	RentalStatusClosed RentalStatus = "CLOSED"
)

// Rental is one rental transaction: 1..N vehicles handed to a customer at a
// start time under a single pricing basis. A rental closes exactly once and
// is never deleted; closed rentals stay in the store as history.
type Rental struct {
	ID         string       `json:"id"`
	CustomerID string       `json:"customer_id"`
	VehicleIDs []string     `json:"vehicle_ids"`
	Basis      RentalBasis  `json:"basis"`
	StartTime  time.Time    `json:"start_time"`
	EndTime    *time.Time   `json:"end_time,omitempty"`
	// AmountCents is 0 while the rental is open and holds the computed bill
	// amount once closed.
	AmountCents int64        `json:"amount_cents"`
	Status      RentalStatus `json:"status"`
}

func (r *Rental) Closed() bool {
	return r.EndTime != nil
}
