package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"car-rental-backend/internal/domain"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay a scripted rental day against the seeded fleet",
	Long:  `Registers two customers, opens a backdated hourly rental for two vehicles and a two-day daily rental for three, closes both and prints the invoices.`,
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	now := time.Now()

	if err := deskListAvailable(ctx); err != nil {
		return err
	}

	john, err := app.customers.RegisterCustomer(ctx, "John Doe", "john.doe@example.com", "123-456-7890")
	if err != nil {
		return err
	}
	jane, err := app.customers.RegisterCustomer(ctx, "Jane Smith", "jane.smith@example.com", "098-765-4321")
	if err != nil {
		return err
	}

	// John held two vehicles for three hours.
	hourly, err := app.rentals.OpenRental(ctx, john.ID, 2, domain.RentalBasisHourly, now.Add(-3*time.Hour))
	if err != nil {
		return err
	}
	bill, err := app.rentals.CloseRental(ctx, hourly.ID, now)
	if err != nil {
		return err
	}
	if err := printInvoice(ctx, bill.ID); err != nil {
		return err
	}

	// Jane held three vehicles for two days and settles immediately.
	daily, err := app.rentals.OpenRental(ctx, jane.ID, 3, domain.RentalBasisDaily, now.Add(-48*time.Hour))
	if err != nil {
		return err
	}
	bill, err = app.rentals.CloseRental(ctx, daily.ID, now)
	if err != nil {
		return err
	}
	if _, err := app.billing.PayBill(ctx, bill.ID); err != nil {
		return err
	}
	if err := printInvoice(ctx, bill.ID); err != nil {
		return err
	}

	return deskListAvailable(ctx)
}

func printInvoice(ctx context.Context, billID string) error {
	invoice, err := app.billing.Invoice(ctx, billID)
	if err != nil {
		return err
	}
	fmt.Println(invoice)
	return nil
}
