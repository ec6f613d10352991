package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Full config", func(t *testing.T) {
		path := writeConfig(t, `
company:
  name: City Rentals
fleet:
  vehicles:
    - id: V001
      model: Toyota Camry
      hourly_rate_cents: 1200
      daily_rate_cents: 6000
      weekly_rate_cents: 35000
  standard:
    count: 3
    id_prefix: STD
    model: Honda Civic
    hourly_rate_cents: 800
    daily_rate_cents: 4500
    weekly_rate_cents: 28000
log:
  level: debug
  format: json
report:
  overdue_after_units: 2
scheduler:
  overdue_rentals: "0 2 * * *"
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "City Rentals", cfg.Company.Name)
		require.Len(t, cfg.Fleet.Vehicles, 1)
		assert.Equal(t, int64(1200), cfg.Fleet.Vehicles[0].HourlyRateCents)
		require.NotNil(t, cfg.Fleet.Standard)
		assert.Equal(t, 3, cfg.Fleet.Standard.Count)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, int64(2), cfg.Report.OverdueAfterUnits)
		assert.Equal(t, "0 2 * * *", cfg.Scheduler.OverdueRentals)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Duplicate fleet ids are rejected", func(t *testing.T) {
		path := writeConfig(t, `
company:
  name: City Rentals
fleet:
  vehicles:
    - id: V001
      model: A
    - id: V001
      model: B
`)
		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate fleet vehicle id")
	})

	t.Run("Standard block needs a prefix", func(t *testing.T) {
		path := writeConfig(t, `
company:
  name: City Rentals
fleet:
  standard:
    count: 2
`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("RENTAL_COMPANY_NAME", "Env Rentals")
		t.Setenv("RENTAL_LOG_LEVEL", "warn")
		path := writeConfig(t, `
company:
  name: File Rentals
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Env Rentals", cfg.Company.Name)
		assert.Equal(t, "warn", cfg.Log.Level)
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "FastWheels Car Rental", cfg.Company.Name)
	assert.Len(t, cfg.Fleet.Vehicles, 5)
}
