package console

// Inline messages shown by the console
const (
	MsgFixFields = "Please fix the highlighted fields."

	MsgLoadEmployees    = "Failed to load employees"
	MsgSaveEmployee     = "Unable to save employee"
	MsgDeleteEmployee   = "Failed to delete employee"
	MsgLoadAttendance   = "Failed to load attendance"
	MsgSaveAttendance   = "Unable to save attendance"
	MsgDeleteAttendance = "Failed to delete attendance"
	MsgLoadDashboard    = "Failed to load dashboard data"

	MsgEmployeeCreated   = "Employee created successfully."
	MsgEmployeeUpdated   = "Employee updated successfully."
	MsgAttendanceMarked  = "Attendance marked."
	MsgAttendanceUpdated = "Attendance updated."

	MsgEmployeeCodeRequired  = "Employee ID is required."
	MsgFullNameRequired      = "Full name is required."
	MsgEmailRequired         = "Email is required."
	MsgDepartmentRequired    = "Department is required."
	MsgDateOfJoiningRequired = "Date of joining is required."
	MsgEmployeeRequired      = "Employee is required."
	MsgDateRequired          = "Date is required."
	MsgStatusInvalid         = "Status must be Present or Absent."

	MsgEmployeeNotInList   = "Employee not found"
	MsgAttendanceNotInList = "Attendance record not found"

	MsgConfirmDeleteEmployee   = "Delete this employee?"
	MsgConfirmDeleteAttendance = "Delete this attendance record?"
)
