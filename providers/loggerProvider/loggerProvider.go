package loggerProvider

import (
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"sundayschool/providers"
)

const serviceName = "sundayschool-assets"

type LogProvider struct {
	logger     *zap.Logger
	production bool
}

// NewLogProvider picks the JSON production encoder when APP_ENV=production and the
// console development encoder otherwise.
func NewLogProvider() providers.ZapLoggerProvider {
	return &LogProvider{production: strings.EqualFold(os.Getenv("APP_ENV"), "production")}
}

func (l *LogProvider) InitLogger() {
	cfg := zap.NewDevelopmentConfig()
	if l.production {
		cfg = zap.NewProductionConfig()
	}

	logger, err := cfg.Build(zap.Fields(zap.String("service", serviceName)))
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	l.logger = logger
	zap.ReplaceGlobals(l.logger)
}

func (l *LogProvider) SyncLogger() {
	if l.logger != nil {
		_ = l.logger.Sync()
	}
}

// GetLogger returns a no-op logger until InitLogger has run.
func (l *LogProvider) GetLogger() *zap.Logger {
	if l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}
