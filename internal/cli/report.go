package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "One-shot reports over the session state",
}

var reportOverdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "List open rentals past the configured unit threshold",
	RunE:  runReportOverdue,
}

func init() {
	reportCmd.AddCommand(reportOverdueCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportOverdue(cmd *cobra.Command, args []string) error {
	overdue, err := app.runner.OverdueRentals(cmdContext(cmd))
	if err != nil {
		return err
	}
	if len(overdue) == 0 {
		fmt.Println("No overdue rentals.")
		return nil
	}
	for _, o := range overdue {
		fmt.Printf("Rental ID: %s | Customer: %s | Basis: %s | Elapsed: %d %s\n",
			o.Rental.ID, o.Rental.CustomerID, o.Rental.Basis,
			o.ElapsedUnits, o.Rental.Basis.UnitLabel())
	}
	return nil
}
