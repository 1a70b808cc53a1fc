package repositories

import (
	"context"

	"hrms-lite/internal/adapters/persistence/models"
	"hrms-lite/internal/core/domain"
)

// EmployeeRepository defines employee repository interface
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id uint) (*models.Employee, error)
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]*models.Employee, error)
	Count(ctx context.Context) (int64, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
}

// AttendanceRepository defines attendance repository interface
type AttendanceRepository interface {
	Create(ctx context.Context, record *models.Attendance) error
	GetByID(ctx context.Context, id uint) (*models.Attendance, error)
	Update(ctx context.Context, record *models.Attendance) error
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter domain.AttendanceFilter) ([]*models.Attendance, error)
	ExistsForDay(ctx context.Context, employeeID uint, date string, excludeID uint) (bool, error)
	CountByStatus(ctx context.Context, date string, status domain.AttendanceStatus) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.RecentAttendance, error)
}
