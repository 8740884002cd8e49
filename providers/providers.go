package providers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type ConfigProvider interface {
	LoadEnv() error
	GetDatabaseString() string
	GetServerPort() string
	GetReportDir() string
	GetReportLabel() string
	GetCurrency() string
	GetDateLayout() string
	GetDepreciationRate() float64
	GetMaintenanceWindowDays() int
}

type DBProvider interface {
	DB() *sqlx.DB
	Close() error
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}
