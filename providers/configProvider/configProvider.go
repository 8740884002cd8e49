package configprovider

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"

	"sundayschool/providers"
	reportservice "sundayschool/services/report"
)

type EnvConfigProvider struct {
	dbUser     string
	dbPassword string
	dbHost     string
	dbPort     string
	dbName     string
	serverPort string

	reportDir             string
	reportLabel           string
	currency              string
	dateLayout            string
	depreciationRate      float64
	maintenanceWindowDays int
}

func NewConfigProvider() providers.ConfigProvider {
	return &EnvConfigProvider{}
}

func (e *EnvConfigProvider) LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not loaded, using system envs")
	}

	e.dbUser = os.Getenv("DB_USER")
	e.dbPassword = os.Getenv("DB_PASSWORD")
	e.dbHost = os.Getenv("DB_HOST")
	e.dbPort = os.Getenv("DB_PORT")
	e.dbName = os.Getenv("DB_NAME")
	e.serverPort = envOr("SERVER_PORT", "8080")

	e.reportDir = envOr("REPORT_DIR", "reports")
	e.reportLabel = envOr("REPORT_LABEL", reportservice.DefaultReportLabel)
	e.dateLayout = envOr("REPORT_DATE_LAYOUT", reportservice.DefaultDateLayout)

	unit, err := currency.ParseISO(envOr("REPORT_CURRENCY", reportservice.DefaultCurrency))
	if err != nil {
		return fmt.Errorf("invalid REPORT_CURRENCY: %w", err)
	}
	e.currency = unit.String()

	e.depreciationRate = reportservice.DefaultDepreciationRate
	if v := os.Getenv("DEPRECIATION_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 || rate > 1 {
			return fmt.Errorf("invalid DEPRECIATION_RATE %q: expected a fraction between 0 and 1", v)
		}
		e.depreciationRate = rate
	}

	e.maintenanceWindowDays = reportservice.DefaultMaintenanceWindowDays
	if v := os.Getenv("MAINTENANCE_WINDOW_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			return fmt.Errorf("invalid MAINTENANCE_WINDOW_DAYS %q: expected a positive number of days", v)
		}
		e.maintenanceWindowDays = days
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e *EnvConfigProvider) GetServerPort() string {
	return e.serverPort
}

func (e *EnvConfigProvider) GetDatabaseString() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		e.dbUser, e.dbPassword, e.dbHost, e.dbPort, e.dbName)
}

func (e *EnvConfigProvider) GetReportDir() string {
	return e.reportDir
}

func (e *EnvConfigProvider) GetReportLabel() string {
	return e.reportLabel
}

func (e *EnvConfigProvider) GetCurrency() string {
	return e.currency
}

func (e *EnvConfigProvider) GetDateLayout() string {
	return e.dateLayout
}

func (e *EnvConfigProvider) GetDepreciationRate() float64 {
	return e.depreciationRate
}

func (e *EnvConfigProvider) GetMaintenanceWindowDays() int {
	return e.maintenanceWindowDays
}
