package main

import (
	"os"
	"os/signal"
	"syscall"

	"hrms-lite/internal/adapters/http/middleware"
	"hrms-lite/internal/adapters/http/routes"
	"hrms-lite/internal/adapters/persistence/models"
	"hrms-lite/internal/adapters/persistence/repositories"
	"hrms-lite/internal/config"
	"hrms-lite/internal/core/services"
	"hrms-lite/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"

	_ "hrms-lite/docs" // Swagger docs
)

// @title HRMS Lite API
// @version 1.0
// @description Employee directory and daily attendance API
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Configure(logger.Config{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Pretty: cfg.IsDev(),
	})

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to auto migrate")
	}
	logger.Info().Msg("database migration completed")

	if cfg.SeedDemo {
		if err := config.NewSeeder(db).Run(); err != nil {
			logger.Warn().Err(err).Msg("failed to seed demo data")
		}
	}

	// Daily attendance summary in the server log
	dashboardService := services.NewDashboardService(
		repositories.NewEmployeeRepository(db),
		repositories.NewAttendanceRepository(db),
	)
	summaryCron, err := services.NewSummaryCron(dashboardService, cfg.SummarySchedule)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to schedule summary cron")
	}
	summaryCron.Start()
	defer summaryCron.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "HRMS Lite API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	metrics := middleware.NewMetrics()

	// Setup middlewares
	middleware.Setup(app, cfg, metrics)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg, metrics)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	logger.Info().Str("port", cfg.Port).Str("mode", cfg.AppMode).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("error during shutdown")
	}
	logger.Info().Msg("server stopped gracefully")
}
