package domain

import "time"

// DateLayout is the calendar date format used on the wire and in storage
const DateLayout = "2006-01-02"

// AttendanceStatus is the closed set of attendance outcomes
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

// Valid reports whether s is one of the known statuses
func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Employee represents an employee record
type Employee struct {
	ID            uint   `json:"id"`
	EmployeeID    string `json:"employee_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Department    string `json:"department"`
	DateOfJoining string `json:"date_of_joining"`
}

// Attendance represents one day of attendance for an employee
type Attendance struct {
	ID         uint             `json:"id"`
	EmployeeID uint             `json:"employee_id"`
	Date       string           `json:"date"`
	Status     AttendanceStatus `json:"status"`
}

// RecentAttendance is a dashboard row joined with the employee name
type RecentAttendance struct {
	EmployeeName string           `json:"employee_name"`
	Date         string           `json:"date"`
	Status       AttendanceStatus `json:"status"`
}

// DashboardSummary is the payload of the dashboard summary endpoint
type DashboardSummary struct {
	TotalEmployees   int64              `json:"total_employees"`
	PresentToday     int64              `json:"present_today"`
	AbsentToday      int64              `json:"absent_today"`
	RecentAttendance []RecentAttendance `json:"recent_attendance"`
}

// ============================================================
// Inputs
// ============================================================

// EmployeeCreate is the body of POST /employees
type EmployeeCreate struct {
	EmployeeID    string `json:"employee_id" validate:"required,max=50"`
	FullName      string `json:"full_name" validate:"required,max=200"`
	Email         string `json:"email" validate:"required,email"`
	Department    string `json:"department" validate:"required,max=100"`
	DateOfJoining string `json:"date_of_joining,omitempty" validate:"required,datetime=2006-01-02"`
}

// EmployeeUpdate is the body of PUT /employees/{id}.
// The employee code is not updatable.
type EmployeeUpdate struct {
	FullName      string `json:"full_name" validate:"required,max=200"`
	Email         string `json:"email" validate:"required,email"`
	Department    string `json:"department" validate:"required,max=100"`
	DateOfJoining string `json:"date_of_joining" validate:"required,datetime=2006-01-02"`
}

// AttendanceCreate is the body of POST /attendance
type AttendanceCreate struct {
	EmployeeID uint             `json:"employee_id" validate:"required"`
	Date       string           `json:"date" validate:"required,datetime=2006-01-02"`
	Status     AttendanceStatus `json:"status" validate:"required,oneof=Present Absent"`
}

// AttendanceUpdate is the body of PUT /attendance/{id}.
// The owning employee cannot be changed.
type AttendanceUpdate struct {
	Date   string           `json:"date" validate:"required,datetime=2006-01-02"`
	Status AttendanceStatus `json:"status" validate:"required,oneof=Present Absent"`
}

// AttendanceFilter scopes attendance listings. Zero values mean "any".
type AttendanceFilter struct {
	EmployeeID uint
	Date       string
}

// Today returns the calendar date of t in DateLayout
func Today(t time.Time) string {
	return t.Format(DateLayout)
}
