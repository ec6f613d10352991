// Package cli is the interactive and one-shot front end over the rental
// core. It owns all input parsing and output rendering; the core only ever
// sees parsed values.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"car-rental-backend/internal/config"
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/jobs"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository/memory"
	"car-rental-backend/internal/service"
)

// application bundles the wired services for command handlers. State is
// process-lifetime only: every invocation starts from the seeded fleet.
type application struct {
	cfg       *config.Config
	store     *memory.Store
	fleet     service.FleetService
	customers service.CustomerService
	rentals   service.RentalService
	billing   service.BillingService
	runner    *jobs.JobRunner
}

var (
	cfgFile string
	app     *application
)

var rootCmd = &cobra.Command{
	Use:           "rentaldesk",
	Short:         "Car rental desk",
	Long:          `Fleet, customer, rental and billing operations for a small car-rental business.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file (built-in demo fleet when omitted)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// cmdContext returns the command's context, which cobra leaves nil unless
// ExecuteContext is used.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func initApp() error {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	store := memory.NewStore()
	fleet := service.NewFleetService(store.Vehicles())
	customers := service.NewCustomerService(store.Customers())
	rentals := service.NewRentalService(store)
	billing := service.NewBillingService(
		store.Bills(),
		store.Rentals(),
		store.Customers(),
		store.Vehicles(),
	)

	app = &application{
		cfg:       cfg,
		store:     store,
		fleet:     fleet,
		customers: customers,
		rentals:   rentals,
		billing:   billing,
		runner:    jobs.NewJobRunner(rentals, cfg),
	}
	return app.seedFleet()
}

// seedFleet loads the configured fleet into the fresh registry.
func (a *application) seedFleet() error {
	ctx := context.Background()
	for _, seed := range a.cfg.Fleet.Vehicles {
		v := &domain.Vehicle{
			ID:              seed.ID,
			Model:           seed.Model,
			HourlyRateCents: seed.HourlyRateCents,
			DailyRateCents:  seed.DailyRateCents,
			WeeklyRateCents: seed.WeeklyRateCents,
		}
		if err := a.fleet.AddVehicle(ctx, v); err != nil {
			return err
		}
	}
	if std := a.cfg.Fleet.Standard; std != nil {
		for i := 1; i <= std.Count; i++ {
			v := &domain.Vehicle{
				ID:              fmt.Sprintf("%s%03d", std.IDPrefix, i),
				Model:           std.Model,
				HourlyRateCents: std.HourlyRateCents,
				DailyRateCents:  std.DailyRateCents,
				WeeklyRateCents: std.WeeklyRateCents,
			}
			if err := a.fleet.AddVehicle(ctx, v); err != nil {
				return err
			}
		}
	}
	return nil
}
