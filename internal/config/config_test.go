package config

import (
	"testing"
	"time"

	"hrms-lite/internal/adapters/persistence/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_MODE", "")
	t.Setenv("DB_DRIVER", "")
	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDev())
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "hrms.db", cfg.Database.SQLitePath)
	assert.Equal(t, "*", cfg.GetAllowedOrigins(), "dev allows every origin")
}

func TestLoadProdMySQL(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("PROD_DB_HOST", "db.internal")
	t.Setenv("PROD_DB_NAME", "hr")
	t.Setenv("SEED_DEMO", "TRUE")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, "root:@tcp(db.internal:3306)/hr?charset=utf8mb4&parseTime=True&loc=Local", buildDSN(cfg.Database))
	assert.Equal(t, "mysql://db.internal:3306/hr", describe(cfg.Database))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("APP_MODE", "staging")
	_, err := Load()
	assert.Error(t, err, "invalid APP_MODE accepted")

	t.Setenv("APP_MODE", "dev")
	t.Setenv("DB_DRIVER", "postgres")
	_, err = Load()
	assert.Error(t, err, "invalid DB_DRIVER accepted")
}

func TestSeederFillsEmptyDatabase(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seeder?mode=memory&cache=shared"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, models.AutoMigrate(db))

	seeder := NewSeeder(db)
	seeder.now = func() time.Time { return time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC) }
	for i := 0; i < 2; i++ {
		require.NoError(t, seeder.Run())
	}

	var employees, attendance int64
	db.Model(&models.Employee{}).Count(&employees)
	db.Model(&models.Attendance{}).Where("date = ?", "2024-03-04").Count(&attendance)
	assert.Equal(t, int64(3), employees, "seeding twice must not duplicate employees")
	assert.Equal(t, int64(2), attendance, "seeding twice must not duplicate marks")
}
