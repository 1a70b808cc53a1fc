package models

import (
	"time"

	"hrms-lite/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Employees
// ============================================================

// Employee represents employees table
type Employee struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	EmployeeID    string    `gorm:"uniqueIndex;size:50;not null" json:"employee_id"`
	FullName      string    `gorm:"size:200;not null" json:"full_name"`
	Email         string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Department    string    `gorm:"size:100;not null" json:"department"`
	DateOfJoining string    `gorm:"size:10;not null" json:"date_of_joining"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// ToDomain converts the row to its wire shape
func (e *Employee) ToDomain() domain.Employee {
	return domain.Employee{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		FullName:      e.FullName,
		Email:         e.Email,
		Department:    e.Department,
		DateOfJoining: e.DateOfJoining,
	}
}

// ============================================================
// Attendance
// ============================================================

// Attendance represents attendance table.
// EmployeeID is a plain indexed column: deleting an employee leaves its
// attendance rows in place.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_attendance_employee_date" json:"employee_id"`
	Date       string    `gorm:"size:10;not null;uniqueIndex:idx_attendance_employee_date;index" json:"date"`
	Status     string    `gorm:"size:10;not null;default:'Present'" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// ToDomain converts the row to its wire shape
func (a *Attendance) ToDomain() domain.Attendance {
	return domain.Attendance{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date,
		Status:     domain.AttendanceStatus(a.Status),
	}
}

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Employee{},
		&Attendance{},
	)
}
