package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/scheduler"
)

var deskCmd = &cobra.Command{
	Use:   "desk",
	Short: "Run the interactive rental desk",
	Long:  `An interactive session over the in-memory registry: manage the fleet, register customers, open and close rentals, and print invoices. State is discarded on exit.`,
	RunE:  runDesk,
}

func init() {
	rootCmd.AddCommand(deskCmd)
}

func runDesk(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)

	sched := scheduler.NewScheduler(app.runner)
	sched.Start()
	defer sched.Stop()

	in := bufio.NewScanner(os.Stdin)
	fmt.Printf("Welcome to %s\n", app.cfg.Company.Name)

	for {
		printMenu()
		choice, err := prompt(in, "> ")
		if err != nil {
			return nil // stdin closed
		}

		var actionErr error
		switch choice {
		case "1":
			actionErr = deskListAvailable(ctx)
		case "2":
			actionErr = deskAddVehicle(ctx, in)
		case "3":
			actionErr = deskRegisterCustomer(ctx, in)
		case "4":
			actionErr = deskListCustomers(ctx)
		case "5":
			actionErr = deskOpenRental(ctx, in)
		case "6":
			actionErr = deskListOpenRentals(ctx)
		case "7":
			actionErr = deskCloseRental(ctx, in)
		case "8":
			actionErr = deskPayBill(ctx, in)
		case "9":
			actionErr = deskShowInvoice(ctx, in)
		case "0", "q", "quit", "exit":
			fmt.Println("Goodbye.")
			return nil
		default:
			fmt.Printf("Unrecognized option %q\n", choice)
		}
		if actionErr != nil {
			if actionErr == io.EOF {
				return nil
			}
			fmt.Printf("Error: %v\n", actionErr)
		}
	}
}

func printMenu() {
	fmt.Println()
	fmt.Println("1. List available vehicles")
	fmt.Println("2. Add vehicle")
	fmt.Println("3. Register customer")
	fmt.Println("4. List customers")
	fmt.Println("5. Open rental")
	fmt.Println("6. List open rentals")
	fmt.Println("7. Close rental")
	fmt.Println("8. Pay bill")
	fmt.Println("9. Show invoice")
	fmt.Println("0. Quit")
}

func deskListAvailable(ctx context.Context) error {
	vehicles, err := app.fleet.ListAvailableVehicles(ctx)
	if err != nil {
		return err
	}
	if len(vehicles) == 0 {
		fmt.Println("No vehicles are currently available for rent.")
		return nil
	}
	fmt.Printf("\nAvailable Vehicles (%d):\n", len(vehicles))
	for i := range vehicles {
		printVehicle(&vehicles[i])
	}
	return nil
}

func deskAddVehicle(ctx context.Context, in *bufio.Scanner) error {
	id, err := prompt(in, "Vehicle ID: ")
	if err != nil {
		return err
	}
	model, err := prompt(in, "Model: ")
	if err != nil {
		return err
	}
	hourly, err := promptPrice(in, "Hourly rate ($): ")
	if err != nil {
		return err
	}
	daily, err := promptPrice(in, "Daily rate ($): ")
	if err != nil {
		return err
	}
	weekly, err := promptPrice(in, "Weekly rate ($): ")
	if err != nil {
		return err
	}

	v := &domain.Vehicle{
		ID:              id,
		Model:           model,
		HourlyRateCents: hourly,
		DailyRateCents:  daily,
		WeeklyRateCents: weekly,
	}
	if err := app.fleet.AddVehicle(ctx, v); err != nil {
		return err
	}
	fmt.Printf("Vehicle %s added to the fleet.\n", v.ID)
	return nil
}

func deskRegisterCustomer(ctx context.Context, in *bufio.Scanner) error {
	name, err := prompt(in, "Name: ")
	if err != nil {
		return err
	}
	email, err := prompt(in, "Email: ")
	if err != nil {
		return err
	}
	phone, err := prompt(in, "Phone: ")
	if err != nil {
		return err
	}

	customer, err := app.customers.RegisterCustomer(ctx, name, email, phone)
	if err != nil {
		return err
	}
	fmt.Printf("Customer registered with ID %s.\n", customer.ID)
	return nil
}

func deskListCustomers(ctx context.Context) error {
	customers, err := app.customers.ListCustomers(ctx)
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		fmt.Println("No customers registered.")
		return nil
	}
	for i := range customers {
		c := &customers[i]
		fmt.Printf("Customer ID: %s | Name: %s | Email: %s | Holding: %d vehicle(s)\n",
			c.ID, c.Name, c.Email, len(c.RentedVehicleIDs))
	}
	return nil
}

func deskOpenRental(ctx context.Context, in *bufio.Scanner) error {
	customerID, err := prompt(in, "Customer ID: ")
	if err != nil {
		return err
	}
	countStr, err := prompt(in, "Number of vehicles: ")
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return fmt.Errorf("invalid vehicle count %q", countStr)
	}
	basisStr, err := prompt(in, "Basis (hourly/daily/weekly): ")
	if err != nil {
		return err
	}
	basis, err := domain.ParseRentalBasis(basisStr)
	if err != nil {
		return err
	}
	startTime, err := promptTimestamp(in, "Start time (YYYY-MM-DD HH:MM, empty = now): ")
	if err != nil {
		return err
	}

	rental, err := app.rentals.OpenRental(ctx, customerID, count, basis, startTime)
	if err != nil {
		return err
	}
	fmt.Printf("Rental %s opened for %d vehicle(s): %v\n", rental.ID, len(rental.VehicleIDs), rental.VehicleIDs)
	return nil
}

func deskListOpenRentals(ctx context.Context) error {
	rentals, err := app.rentals.ListOpenRentals(ctx)
	if err != nil {
		return err
	}
	if len(rentals) == 0 {
		fmt.Println("No open rentals.")
		return nil
	}
	for i := range rentals {
		r := &rentals[i]
		fmt.Printf("Rental ID: %s | Customer: %s | Basis: %s | Vehicles: %v | Started: %s\n",
			r.ID, r.CustomerID, r.Basis, r.VehicleIDs, r.StartTime.Format(timestampLayout))
	}
	return nil
}

func deskCloseRental(ctx context.Context, in *bufio.Scanner) error {
	rentalID, err := prompt(in, "Rental ID: ")
	if err != nil {
		return err
	}
	returnTime, err := promptTimestamp(in, "Return time (YYYY-MM-DD HH:MM, empty = now): ")
	if err != nil {
		return err
	}

	bill, err := app.rentals.CloseRental(ctx, rentalID, returnTime)
	if err != nil {
		return err
	}
	invoice, err := app.billing.Invoice(ctx, bill.ID)
	if err != nil {
		return err
	}
	fmt.Println(invoice)
	return nil
}

func deskPayBill(ctx context.Context, in *bufio.Scanner) error {
	billID, err := prompt(in, "Bill ID: ")
	if err != nil {
		return err
	}
	bill, err := app.billing.PayBill(ctx, billID)
	if err != nil {
		return err
	}
	fmt.Printf("Bill %s marked as paid.\n", bill.ID)
	return nil
}

func deskShowInvoice(ctx context.Context, in *bufio.Scanner) error {
	billID, err := prompt(in, "Bill ID: ")
	if err != nil {
		return err
	}
	invoice, err := app.billing.Invoice(ctx, billID)
	if err != nil {
		return err
	}
	fmt.Println(invoice)
	return nil
}
