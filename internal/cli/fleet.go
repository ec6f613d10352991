package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Inspect the seeded fleet",
}

var fleetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every vehicle in the fleet",
	RunE:  runFleetList,
}

var fleetAvailableCmd = &cobra.Command{
	Use:   "available",
	Short: "List available vehicles",
	RunE:  runFleetAvailable,
}

func init() {
	fleetCmd.AddCommand(fleetListCmd)
	fleetCmd.AddCommand(fleetAvailableCmd)
	rootCmd.AddCommand(fleetCmd)
}

func runFleetList(cmd *cobra.Command, args []string) error {
	vehicles, err := app.fleet.ListVehicles(cmdContext(cmd))
	if err != nil {
		return err
	}
	fmt.Printf("Fleet of %s (%d vehicle(s)):\n", app.cfg.Company.Name, len(vehicles))
	for i := range vehicles {
		printVehicle(&vehicles[i])
	}
	return nil
}

func runFleetAvailable(cmd *cobra.Command, args []string) error {
	return deskListAvailable(cmdContext(cmd))
}
