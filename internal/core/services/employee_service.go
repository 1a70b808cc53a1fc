package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"hrms-lite/internal/adapters/persistence/models"
	"hrms-lite/internal/adapters/persistence/repositories"
	"hrms-lite/internal/core/domain"

	"gorm.io/gorm"
)

// EmployeeService handles employee business logic
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepository
	now          func() time.Time
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// List lists all employees in creation order
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Employee, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out, nil
}

// Get gets an employee by id
func (s *EmployeeService) Get(ctx context.Context, id uint) (*domain.Employee, error) {
	row, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	employee := row.ToDomain()
	return &employee, nil
}

// Create validates and stores a new employee
func (s *EmployeeService) Create(ctx context.Context, input domain.EmployeeCreate) (*domain.Employee, error) {
	input.EmployeeID = strings.TrimSpace(input.EmployeeID)
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	input.Department = strings.TrimSpace(input.Department)
	if input.DateOfJoining == "" {
		input.DateOfJoining = domain.Today(s.now())
	}

	if err := validateInput(input, employeeMessages); err != nil {
		return nil, err
	}

	exists, err := s.employeeRepo.ExistsByEmployeeID(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmployeeCodeTaken
	}
	exists, err = s.employeeRepo.ExistsByEmail(ctx, input.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	row := &models.Employee{
		EmployeeID:    input.EmployeeID,
		FullName:      input.FullName,
		Email:         input.Email,
		Department:    input.Department,
		DateOfJoining: input.DateOfJoining,
	}
	if err := s.employeeRepo.Create(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmployeeCodeTaken
		}
		return nil, err
	}

	employee := row.ToDomain()
	return &employee, nil
}

// Update replaces the mutable fields of an employee. The employee code is kept.
func (s *EmployeeService) Update(ctx context.Context, id uint, input domain.EmployeeUpdate) (*domain.Employee, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	input.Department = strings.TrimSpace(input.Department)

	row, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}

	if err := validateInput(input, employeeMessages); err != nil {
		return nil, err
	}

	exists, err := s.employeeRepo.ExistsByEmail(ctx, input.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	row.FullName = input.FullName
	row.Email = input.Email
	row.Department = input.Department
	row.DateOfJoining = input.DateOfJoining
	if err := s.employeeRepo.Update(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	employee := row.ToDomain()
	return &employee, nil
}

// Delete removes an employee. Attendance rows referencing it are kept.
func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	removed, err := s.employeeRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
