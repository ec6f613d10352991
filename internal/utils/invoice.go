package utils

import (
	"fmt"
	"strings"

	"car-rental-backend/internal/domain"
)

const invoiceTimeLayout = "2006-01-02 15:04:05"

// RenderInvoice produces the fixed-layout invoice text for a bill over a
// closed rental. Pure presentation: deterministic given its inputs, no store
// access.
func RenderInvoice(bill *domain.Bill, rental *domain.Rental, customer *domain.Customer, vehicles []domain.Vehicle) string {
	var b strings.Builder

	b.WriteString("======= INVOICE =======\n")
	fmt.Fprintf(&b, "Bill ID: %s\n", bill.ID)
	fmt.Fprintf(&b, "Customer: %s\n", customer.Name)
	b.WriteString("\nRental Details:\n")
	fmt.Fprintf(&b, "- Rental ID: %s\n", rental.ID)
	fmt.Fprintf(&b, "- Rental Basis: %s\n", strings.ToLower(string(rental.Basis)))
	units := RentalDurationUnits(rental.Basis, rental.StartTime, *rental.EndTime)
	fmt.Fprintf(&b, "- Duration: %d %s\n", units, rental.Basis.UnitLabel())
	fmt.Fprintf(&b, "- Start Time: %s\n", rental.StartTime.Format(invoiceTimeLayout))
	fmt.Fprintf(&b, "- End Time: %s\n", rental.EndTime.Format(invoiceTimeLayout))

	b.WriteString("\nVehicles Rented:\n")
	for i := range vehicles {
		fmt.Fprintf(&b, "- Vehicle ID: %s | Model: %s\n", vehicles[i].ID, vehicles[i].Model)
	}

	fmt.Fprintf(&b, "\nTotal Amount: %s\n", FormatCents(bill.AmountCents))
	fmt.Fprintf(&b, "Reference: %s\n", bill.Reference)
	status := "Unpaid"
	if bill.Paid {
		status = "Paid"
	}
	fmt.Fprintf(&b, "Status: %s\n", status)
	fmt.Fprintf(&b, "\nGenerated on: %s\n", bill.GeneratedAt.Format(invoiceTimeLayout))
	b.WriteString("=======================\n")

	return b.String()
}
