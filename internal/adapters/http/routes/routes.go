package routes

import (
	"hrms-lite/internal/adapters/http/handlers"
	"hrms-lite/internal/adapters/http/middleware"
	"hrms-lite/internal/adapters/persistence/repositories"
	"hrms-lite/internal/config"
	"hrms-lite/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, metrics *middleware.Metrics) {
	// Initialize repositories
	employeeRepo := repositories.NewEmployeeRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)

	// Initialize services
	employeeService := services.NewEmployeeService(employeeRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, employeeRepo)
	dashboardService := services.NewDashboardService(employeeRepo, attendanceRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.AppMode, pinger(db))
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	if metrics != nil {
		app.Get("/metrics", metrics.Endpoint())
	}

	setupAPIRoutes(app, employeeHandler, attendanceHandler, dashboardHandler)
}

// setupAPIRoutes configures the collection routes
func setupAPIRoutes(
	router fiber.Router,
	employeeHandler *handlers.EmployeeHandler,
	attendanceHandler *handlers.AttendanceHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	// Employee routes
	employees := router.Group("/employees", middleware.NoCacheHeaders())
	employees.Get("/", employeeHandler.ListEmployees)
	employees.Post("/", employeeHandler.CreateEmployee)
	employees.Put("/:id", employeeHandler.UpdateEmployee)
	employees.Delete("/:id", employeeHandler.DeleteEmployee)

	// Attendance routes
	attendance := router.Group("/attendance", middleware.NoCacheHeaders())
	attendance.Get("/", attendanceHandler.ListAttendance)
	attendance.Post("/", attendanceHandler.CreateAttendance)
	attendance.Put("/:id", attendanceHandler.UpdateAttendance)
	attendance.Delete("/:id", attendanceHandler.DeleteAttendance)

	// Dashboard routes
	router.Get("/dashboard-summary", middleware.NoCacheHeaders(), dashboardHandler.GetSummary)
}

// pinger pings the given connection rather than the global one
func pinger(db *gorm.DB) func() error {
	return func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}
}
