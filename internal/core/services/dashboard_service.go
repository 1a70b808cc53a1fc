package services

import (
	"context"
	"fmt"
	"time"

	"hrms-lite/internal/adapters/persistence/repositories"
	"hrms-lite/internal/core/domain"
)

// RecentAttendanceLimit caps the recent activity list on the dashboard
const RecentAttendanceLimit = 10

// DashboardService handles dashboard operations
type DashboardService struct {
	employeeRepo   repositories.EmployeeRepository
	attendanceRepo repositories.AttendanceRepository
	now            func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	employeeRepo repositories.EmployeeRepository,
	attendanceRepo repositories.AttendanceRepository,
) *DashboardService {
	return &DashboardService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// GetSummary returns headcount, today's present/absent counts and recent activity
func (s *DashboardService) GetSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	today := domain.Today(s.now())
	data := &domain.DashboardSummary{}

	var err error
	if data.TotalEmployees, err = s.employeeRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count employees: %w", err)
	}
	if data.PresentToday, err = s.attendanceRepo.CountByStatus(ctx, today, domain.StatusPresent); err != nil {
		return nil, fmt.Errorf("count present: %w", err)
	}
	if data.AbsentToday, err = s.attendanceRepo.CountByStatus(ctx, today, domain.StatusAbsent); err != nil {
		return nil, fmt.Errorf("count absent: %w", err)
	}
	if data.RecentAttendance, err = s.attendanceRepo.Recent(ctx, RecentAttendanceLimit); err != nil {
		return nil, fmt.Errorf("recent attendance: %w", err)
	}
	if data.RecentAttendance == nil {
		data.RecentAttendance = []domain.RecentAttendance{}
	}

	return data, nil
}
