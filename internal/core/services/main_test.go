package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"hrms-lite/internal/adapters/persistence/models"
	"hrms-lite/internal/adapters/persistence/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// newTestDB opens an isolated in-memory database with the schema migrated
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:services_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open database")
	require.NoError(t, models.AutoMigrate(db), "failed to migrate")
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

type testServices struct {
	employees  *EmployeeService
	attendance *AttendanceService
	dashboard  *DashboardService
}

func newTestServices(t *testing.T, now time.Time) testServices {
	db := newTestDB(t)
	employeeRepo := repositories.NewEmployeeRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	svc := testServices{
		employees:  NewEmployeeService(employeeRepo),
		attendance: NewAttendanceService(attendanceRepo, employeeRepo),
		dashboard:  NewDashboardService(employeeRepo, attendanceRepo),
	}
	clock := func() time.Time { return now }
	svc.employees.now = clock
	svc.dashboard.now = clock
	return svc
}
