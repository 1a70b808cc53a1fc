package repositories

import (
	"context"

	"hrms-lite/internal/adapters/persistence/models"
	"hrms-lite/internal/core/domain"

	"gorm.io/gorm"
)

// attendanceRepository implements AttendanceRepository interface
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create creates a new attendance record
func (r *attendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetByID gets an attendance record by primary key
func (r *attendanceRepository) GetByID(ctx context.Context, id uint) (*models.Attendance, error) {
	var record models.Attendance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Update saves only the mutable columns (date, status)
func (r *attendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	return r.db.WithContext(ctx).
		Model(record).
		Select("date", "status", "updated_at").
		Updates(record).Error
}

// Delete hard deletes an attendance record and reports whether a row was removed
func (r *attendanceRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Attendance{}, id)
	return result.RowsAffected > 0, result.Error
}

// List lists attendance newest first, scoped by the non-zero filter fields
func (r *attendanceRepository) List(ctx context.Context, filter domain.AttendanceFilter) ([]*models.Attendance, error) {
	var records []*models.Attendance
	q := r.db.WithContext(ctx).Model(&models.Attendance{})
	if filter.EmployeeID != 0 {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if err := q.Order("date DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ExistsForDay checks whether the employee already has a record on date
func (r *attendanceRepository) ExistsForDay(ctx context.Context, employeeID uint, date string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("employee_id = ? AND date = ?", employeeID, date)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// CountByStatus counts records with status on date
func (r *attendanceRepository) CountByStatus(ctx context.Context, date string, status domain.AttendanceStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("date = ? AND status = ?", date, string(status)).
		Count(&count).Error
	return count, err
}

// Recent returns the latest attendance rows joined with employee names.
// Rows whose employee was deleted are skipped.
func (r *attendanceRepository) Recent(ctx context.Context, limit int) ([]domain.RecentAttendance, error) {
	var rows []domain.RecentAttendance
	err := r.db.WithContext(ctx).
		Table("attendance AS a").
		Select("e.full_name AS employee_name, a.date AS date, a.status AS status").
		Joins("JOIN employees AS e ON e.id = a.employee_id").
		Order("a.date DESC").
		Order("a.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
