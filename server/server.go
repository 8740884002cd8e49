package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	assethandler "sundayschool/handler/assetHandler"
	"sundayschool/providers"
	configprovider "sundayschool/providers/configProvider"
	"sundayschool/providers/databaseProvider"
	"sundayschool/providers/loggerProvider"
	workbookprovider "sundayschool/providers/workbookProvider"
	assetrepo "sundayschool/repository/asset"
	assetservice "sundayschool/services/asset"
	reportservice "sundayschool/services/report"
	userservice "sundayschool/services/user"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Config       providers.ConfigProvider
	DB           providers.DBProvider
	Logger       providers.ZapLoggerProvider
	AssetHandler *assethandler.AssetHandler
	UserHandler  *userservice.UserHandler
	httpServer   *http.Server
}

func ServerInit() *Server {
	logger := loggerProvider.NewLogProvider()
	logger.InitLogger()

	cfg := configprovider.NewConfigProvider()
	if err := cfg.LoadEnv(); err != nil {
		logger.GetLogger().Fatal("invalid configuration", zap.Error(err))
	}

	db, err := databaseProvider.NewDBProvider(cfg.GetDatabaseString(), logger.GetLogger())
	if err != nil {
		logger.GetLogger().Fatal("failed to initialize database", zap.Error(err))
	}

	// repositories
	assetRepo := assetrepo.NewAssetRepository(db.DB())
	userRepo := userservice.NewUserRepository(db.DB())

	// report export
	exporter := reportservice.NewExporter(
		ReportOptions(cfg),
		workbookprovider.NewExcelWorkbookFactory(cfg.GetReportDir()),
		logger.GetLogger().Named("report"),
	)

	// services
	assetService := assetservice.NewAssetService(assetRepo, exporter, logger)
	userService := userservice.NewUserService(userRepo, logger)

	// handlers
	assetHandler := assethandler.NewAssetHandler(assetService, cfg.GetReportDir())
	userHandler := userservice.NewUserHandler(userService)

	return &Server{
		Config:       cfg,
		DB:           db,
		Logger:       logger,
		AssetHandler: assetHandler,
		UserHandler:  userHandler,
	}
}

func ReportOptions(cfg providers.ConfigProvider) reportservice.Options {
	return reportservice.Options{
		DepreciationRate:      cfg.GetDepreciationRate(),
		MaintenanceWindowDays: cfg.GetMaintenanceWindowDays(),
		Currency:              cfg.GetCurrency(),
		DateLayout:            cfg.GetDateLayout(),
		ReportLabel:           cfg.GetReportLabel(),
	}
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	s.Logger.GetLogger().Info("server running", zap.String("addr", addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.Logger.GetLogger().Fatal("server error", zap.Error(err))
	}
}

func (s *Server) Stop() {
	log := s.Logger.GetLogger()
	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error("error shutting down server", zap.Error(err))
		}
	}

	if err := s.DB.Close(); err != nil {
		log.Error("error closing DB", zap.Error(err))
	}

	log.Info("server shutdown complete")
	s.Logger.SyncLogger()
}
