package config

import (
	"time"

	"hrms-lite/internal/adapters/persistence/models"
	"hrms-lite/internal/core/domain"
	"hrms-lite/internal/pkg/logger"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, now: time.Now}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	logger.Info().Msg("running database seeders")

	if err := s.seedDemoEmployees(); err != nil {
		logger.Warn().Err(err).Msg("demo employee seeder skipped")
	}

	logger.Info().Msg("database seeding completed")
	return nil
}

// seedDemoEmployees inserts a small demo roster into an empty database,
// with today's attendance for the first two employees.
// For development only.
func (s *Seeder) seedDemoEmployees() error {
	var count int64
	if err := s.db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	employees := []models.Employee{
		{EmployeeID: "EMP-001", FullName: "Ada Lovelace", Email: "ada@example.com", Department: "Engineering", DateOfJoining: "2023-01-09"},
		{EmployeeID: "EMP-002", FullName: "Grace Hopper", Email: "grace@example.com", Department: "Engineering", DateOfJoining: "2023-03-01"},
		{EmployeeID: "EMP-003", FullName: "Katherine Johnson", Email: "katherine@example.com", Department: "Finance", DateOfJoining: "2024-06-17"},
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&employees).Error; err != nil {
			return err
		}
		today := domain.Today(s.now())
		records := []models.Attendance{
			{EmployeeID: employees[0].ID, Date: today, Status: string(domain.StatusPresent)},
			{EmployeeID: employees[1].ID, Date: today, Status: string(domain.StatusAbsent)},
		}
		if err := tx.Create(&records).Error; err != nil {
			return err
		}
		logger.Info().Int("employees", len(employees)).Msg("demo employees created")
		return nil
	})
}
