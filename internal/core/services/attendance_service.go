package services

import (
	"context"
	"errors"

	"hrms-lite/internal/adapters/persistence/models"
	"hrms-lite/internal/adapters/persistence/repositories"
	"hrms-lite/internal/core/domain"

	"gorm.io/gorm"
)

// AttendanceService handles attendance business logic
type AttendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	employeeRepo   repositories.EmployeeRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	employeeRepo repositories.EmployeeRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// List lists attendance scoped by filter, newest first
func (s *AttendanceService) List(ctx context.Context, filter domain.AttendanceFilter) ([]domain.Attendance, error) {
	if err := validateDate("date", filter.Date, attendanceMessages); err != nil {
		return nil, err
	}
	rows, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Attendance, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out, nil
}

// Create marks attendance for one employee on one date
func (s *AttendanceService) Create(ctx context.Context, input domain.AttendanceCreate) (*domain.Attendance, error) {
	if err := validateInput(input, attendanceMessages); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, input.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}

	exists, err := s.attendanceRepo.ExistsForDay(ctx, input.EmployeeID, input.Date, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAttendanceExists
	}

	row := &models.Attendance{
		EmployeeID: input.EmployeeID,
		Date:       input.Date,
		Status:     string(input.Status),
	}
	if err := s.attendanceRepo.Create(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAttendanceExists
		}
		return nil, err
	}

	record := row.ToDomain()
	return &record, nil
}

// Update changes date and status. The owning employee never changes.
func (s *AttendanceService) Update(ctx context.Context, id uint, input domain.AttendanceUpdate) (*domain.Attendance, error) {
	row, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAttendanceNotFound
		}
		return nil, err
	}

	if err := validateInput(input, attendanceMessages); err != nil {
		return nil, err
	}

	exists, err := s.attendanceRepo.ExistsForDay(ctx, row.EmployeeID, input.Date, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAttendanceExists
	}

	row.Date = input.Date
	row.Status = string(input.Status)
	if err := s.attendanceRepo.Update(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAttendanceExists
		}
		return nil, err
	}

	record := row.ToDomain()
	return &record, nil
}

// Delete removes an attendance record
func (s *AttendanceService) Delete(ctx context.Context, id uint) error {
	removed, err := s.attendanceRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrAttendanceNotFound
	}
	return nil
}
