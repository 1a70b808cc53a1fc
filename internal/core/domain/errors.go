package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Employee errors
var (
	ErrEmployeeNotFound  = errors.New("Employee not found")
	ErrEmployeeCodeTaken = errors.New("Employee ID already exists")
	ErrEmailTaken        = errors.New("Email already exists")
)

// Attendance errors
var (
	ErrAttendanceNotFound = errors.New("Attendance record not found")
	ErrAttendanceExists   = errors.New("Attendance already marked for this date")
	ErrInvalidStatus      = errors.New("Status must be Present or Absent")
)

// FieldError is a validation failure on a single input field
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets callers match field errors against ErrInvalidInput
func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}
