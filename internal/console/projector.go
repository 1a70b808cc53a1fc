package console

import (
	"sort"
	"strings"

	"hrms-lite/internal/core/domain"
)

// AttendanceCounts partitions attendance by status.
// Present + Absent + Unknown always equals Total.
type AttendanceCounts struct {
	Total   int
	Present int
	Absent  int
	// Unknown counts records whose status is neither Present nor Absent
	Unknown int
}

// VisibleAttendance returns the records dated date in snapshot order.
// An empty date returns records unchanged.
func VisibleAttendance(records []domain.Attendance, date string) []domain.Attendance {
	if date == "" {
		return records
	}
	out := make([]domain.Attendance, 0, len(records))
	for _, r := range records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// CountAttendance counts records by status
func CountAttendance(records []domain.Attendance) AttendanceCounts {
	counts := AttendanceCounts{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case domain.StatusPresent:
			counts.Present++
		case domain.StatusAbsent:
			counts.Absent++
		default:
			counts.Unknown++
		}
	}
	return counts
}

// VisibleEmployees returns the employees whose code, name, email or
// department contains search, case-insensitively, in snapshot order.
func VisibleEmployees(records []domain.Employee, search string) []domain.Employee {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return records
	}
	out := make([]domain.Employee, 0, len(records))
	for _, e := range records {
		for _, hay := range []string{e.EmployeeID, e.FullName, e.Email, e.Department} {
			if strings.Contains(strings.ToLower(hay), needle) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// DepartmentCount is the headcount of one department
type DepartmentCount struct {
	Department string
	Employees  int
}

// CountByDepartment returns headcounts sorted by department name
func CountByDepartment(records []domain.Employee) []DepartmentCount {
	counts := make(map[string]int)
	for _, e := range records {
		counts[e.Department]++
	}
	out := make([]DepartmentCount, 0, len(counts))
	for dept, n := range counts {
		out = append(out, DepartmentCount{Department: dept, Employees: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}
