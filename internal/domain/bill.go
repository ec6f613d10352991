package domain

import "time"

// Bill is the invoice record produced when a rental closes. The amount is a
// copy of the closed rental's amount; Reference is the opaque handle handed
// to external payment reconciliation.
type Bill struct {
	ID          string    `json:"id"`
	RentalID    string    `json:"rental_id"`
	Reference   string    `json:"reference"`
	AmountCents int64     `json:"amount_cents"`
	GeneratedAt time.Time `json:"generated_at"`
	Paid        bool      `json:"paid"`
}
