package repositories

import (
	"context"

	"hrms-lite/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// employeeRepository implements EmployeeRepository interface
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create creates a new employee
func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// GetByID gets an employee by primary key
func (r *employeeRepository) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Update saves all columns of an employee
func (r *employeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// Delete hard deletes an employee and reports whether a row was removed
func (r *employeeRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Employee{}, id)
	return result.RowsAffected > 0, result.Error
}

// List lists all employees in insertion order
func (r *employeeRepository) List(ctx context.Context) ([]*models.Employee, error) {
	var employees []*models.Employee
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Count counts all employees
func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Count(&total).Error
	return total, err
}

// ExistsByEmployeeID checks if an employee code is taken
func (r *employeeRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).Where("employee_id = ?", employeeID).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks if an email is taken by an employee other than excludeID
func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Employee{}).Where("LOWER(email) = LOWER(?)", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
