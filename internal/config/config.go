package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Company   CompanyConfig   `yaml:"company"`
	Fleet     FleetConfig     `yaml:"fleet"`
	Log       LogConfig       `yaml:"log"`
	Report    ReportConfig    `yaml:"report"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// CompanyConfig identifies the rental company shown in the CLI banner.
type CompanyConfig struct {
	Name string `yaml:"name"`
}

// FleetConfig describes the fleet seeded into the registry at startup.
// Vehicles lists explicit units; Standard adds a block of identical units
// under one shared model and price set.
type FleetConfig struct {
	Vehicles []VehicleSeed `yaml:"vehicles"`
	Standard *StandardSeed `yaml:"standard"`
}

// VehicleSeed is one explicit vehicle, rates in integer cents.
type VehicleSeed struct {
	ID              string `yaml:"id"`
	Model           string `yaml:"model"`
	HourlyRateCents int64  `yaml:"hourly_rate_cents"`
	DailyRateCents  int64  `yaml:"daily_rate_cents"`
	WeeklyRateCents int64  `yaml:"weekly_rate_cents"`
}

// StandardSeed expands into Count identical vehicles with IDs
// <id_prefix>001, <id_prefix>002, ...
type StandardSeed struct {
	Count           int    `yaml:"count"`
	IDPrefix        string `yaml:"id_prefix"`
	Model           string `yaml:"model"`
	HourlyRateCents int64  `yaml:"hourly_rate_cents"`
	DailyRateCents  int64  `yaml:"daily_rate_cents"`
	WeeklyRateCents int64  `yaml:"weekly_rate_cents"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// ReportConfig tunes the overdue-rentals report.
type ReportConfig struct {
	// OverdueAfterUnits flags an open rental once its elapsed time exceeds
	// this many units of its own basis.
	OverdueAfterUnits int64 `yaml:"overdue_after_units"`
}

// SchedulerConfig contains cron specs for the desk session's background
// jobs. An empty spec disables the job.
type SchedulerConfig struct {
	OverdueRentals string `yaml:"overdue_rentals"`
}

// Load reads configuration from a YAML file.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration used when no config file is
// given: the demo fleet of five cars under FastWheels pricing.
func Default() *Config {
	return &Config{
		Company: CompanyConfig{Name: "FastWheels Car Rental"},
		Fleet: FleetConfig{
			Vehicles: []VehicleSeed{
				{ID: "C001", Model: "Toyota Camry", HourlyRateCents: 1000, DailyRateCents: 5000, WeeklyRateCents: 30000},
				{ID: "C002", Model: "Honda Civic", HourlyRateCents: 800, DailyRateCents: 4500, WeeklyRateCents: 28000},
				{ID: "C003", Model: "Ford Mustang", HourlyRateCents: 1500, DailyRateCents: 7500, WeeklyRateCents: 45000},
				{ID: "C004", Model: "Tesla Model 3", HourlyRateCents: 2000, DailyRateCents: 10000, WeeklyRateCents: 60000},
				{ID: "C005", Model: "BMW X5", HourlyRateCents: 2500, DailyRateCents: 12000, WeeklyRateCents: 70000},
			},
		},
		Log:       LogConfig{Level: "info", Format: "text"},
		Report:    ReportConfig{OverdueAfterUnits: 1},
		Scheduler: SchedulerConfig{OverdueRentals: ""},
	}
}

// overrideWithEnv overrides config values with environment variables.
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("RENTAL_COMPANY_NAME"); val != "" {
		c.Company.Name = val
	}
	if val := os.Getenv("RENTAL_LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("RENTAL_LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Company.Name == "" {
		return fmt.Errorf("company name is required")
	}
	seen := map[string]bool{}
	for _, v := range c.Fleet.Vehicles {
		if v.ID == "" {
			return fmt.Errorf("fleet vehicle without id")
		}
		if seen[v.ID] {
			return fmt.Errorf("duplicate fleet vehicle id %q", v.ID)
		}
		seen[v.ID] = true
		if v.HourlyRateCents < 0 || v.DailyRateCents < 0 || v.WeeklyRateCents < 0 {
			return fmt.Errorf("fleet vehicle %s has a negative rate", v.ID)
		}
	}
	if s := c.Fleet.Standard; s != nil {
		if s.Count <= 0 {
			return fmt.Errorf("standard fleet count must be positive")
		}
		if s.IDPrefix == "" {
			return fmt.Errorf("standard fleet id_prefix is required")
		}
	}
	if c.Report.OverdueAfterUnits < 1 {
		return fmt.Errorf("report overdue_after_units must be at least 1")
	}
	return nil
}
