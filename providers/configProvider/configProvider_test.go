package configprovider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"SERVER_PORT", "REPORT_DIR", "REPORT_LABEL", "REPORT_CURRENCY",
			"REPORT_DATE_LAYOUT", "DEPRECIATION_RATE", "MAINTENANCE_WINDOW_DAYS"} {
			t.Setenv(k, "")
		}

		cfg := NewConfigProvider()
		require.NoError(t, cfg.LoadEnv())

		assert.Equal(t, "8080", cfg.GetServerPort())
		assert.Equal(t, "reports", cfg.GetReportDir())
		assert.Equal(t, "Assets_Report", cfg.GetReportLabel())
		assert.Equal(t, "USD", cfg.GetCurrency())
		assert.Equal(t, "01/02/2006", cfg.GetDateLayout())
		assert.Equal(t, 0.10, cfg.GetDepreciationRate())
		assert.Equal(t, 30, cfg.GetMaintenanceWindowDays())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_USER", "school")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("DB_NAME", "sundayschool")
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("REPORT_DIR", "/tmp/reports")
		t.Setenv("REPORT_LABEL", "Church_Assets")
		t.Setenv("REPORT_CURRENCY", "EUR")
		t.Setenv("REPORT_DATE_LAYOUT", "02/01/2006")
		t.Setenv("DEPRECIATION_RATE", "0.2")
		t.Setenv("MAINTENANCE_WINDOW_DAYS", "14")

		cfg := NewConfigProvider()
		require.NoError(t, cfg.LoadEnv())

		assert.Equal(t, "user=school password=secret host=localhost port=5432 dbname=sundayschool sslmode=disable",
			cfg.GetDatabaseString())
		assert.Equal(t, "9000", cfg.GetServerPort())
		assert.Equal(t, "/tmp/reports", cfg.GetReportDir())
		assert.Equal(t, "Church_Assets", cfg.GetReportLabel())
		assert.Equal(t, "EUR", cfg.GetCurrency())
		assert.Equal(t, "02/01/2006", cfg.GetDateLayout())
		assert.Equal(t, 0.2, cfg.GetDepreciationRate())
		assert.Equal(t, 14, cfg.GetMaintenanceWindowDays())
	})

	invalid := []struct {
		name, key, value string
	}{
		{"unknown currency", "REPORT_CURRENCY", "XYZW"},
		{"rate is not a number", "DEPRECIATION_RATE", "ten"},
		{"rate above one", "DEPRECIATION_RATE", "1.5"},
		{"window is zero", "MAINTENANCE_WINDOW_DAYS", "0"},
		{"window is not a number", "MAINTENANCE_WINDOW_DAYS", "month"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("REPORT_CURRENCY", "")
			t.Setenv("DEPRECIATION_RATE", "")
			t.Setenv("MAINTENANCE_WINDOW_DAYS", "")
			t.Setenv(tc.key, tc.value)

			assert.Error(t, NewConfigProvider().LoadEnv())
		})
	}
}
