package config

import (
	"fmt"
	"os"
	"strings"

	"hrms-lite/internal/pkg/logger"

	"github.com/joho/godotenv"
)

// Database drivers
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config holds all configuration for the server
type Config struct {
	AppMode         string
	Port            string
	LogLevel        string
	SummarySchedule string
	SeedDemo        bool
	Database        DatabaseConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
}

// AppConfig is the loaded server configuration
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// .env is optional outside development
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg(".env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	dbConfig := loadDatabaseConfig(appMode)
	if dbConfig.Driver != DriverSQLite && dbConfig.Driver != DriverMySQL {
		return nil, fmt.Errorf("invalid DB_DRIVER: '%s' (must be '%s' or '%s')", dbConfig.Driver, DriverSQLite, DriverMySQL)
	}

	config := &Config{
		AppMode:         appMode,
		Port:            getEnv("PORT", "8000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SummarySchedule: getEnv("SUMMARY_CRON", ""),
		SeedDemo:        strings.EqualFold(getEnv("SEED_DEMO", "false"), "true"),
		Database:        dbConfig,
	}

	AppConfig = config

	logger.Info().Str("mode", appMode).Str("driver", dbConfig.Driver).Msg("configuration loaded")
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Driver:     strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", DriverSQLite))),
		SQLitePath: getEnv("SQLITE_PATH", "hrms.db"),
		Host:       getEnv(prefix+"DB_HOST", "localhost"),
		Port:       getEnv(prefix+"DB_PORT", "3306"),
		User:       getEnv(prefix+"DB_USER", "root"),
		Password:   getEnv(prefix+"DB_PASS", ""),
		DBName:     getEnv(prefix+"DB_NAME", "hrms"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:5173"
	}
	return origins
}
