package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"hrms-lite/internal/console"
	"hrms-lite/internal/core/domain"

	"github.com/spf13/cobra"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderEmployees(w io.Writer, employees []domain.Employee) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tEMPLOYEE ID\tFULL NAME\tEMAIL\tDEPARTMENT\tJOINED")
	for _, e := range employees {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.EmployeeID, e.FullName, e.Email, e.Department, e.DateOfJoining)
	}
	tw.Flush()
}

func renderDepartments(w io.Writer, counts []console.DepartmentCount) {
	tw := newTable(w)
	fmt.Fprintln(tw, "DEPARTMENT\tEMPLOYEES")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Department, c.Employees)
	}
	tw.Flush()
}

func renderAttendance(w io.Writer, name string, records []domain.Attendance) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tEMPLOYEE\tDATE\tSTATUS")
	for _, r := range records {
		who := name
		if who == "" {
			who = fmt.Sprintf("Employee #%d", r.EmployeeID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, who, r.Date, r.Status)
	}
	tw.Flush()
}

func renderSummary(w io.Writer, s domain.DashboardSummary) {
	fmt.Fprintf(w, "Total Employees: %d\nPresent Today:   %d\nAbsent Today:    %d\n\n", s.TotalEmployees, s.PresentToday, s.AbsentToday)
	if len(s.RecentAttendance) == 0 {
		fmt.Fprintln(w, "No recent attendance.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "EMPLOYEE\tDATE\tSTATUS")
	for _, r := range s.RecentAttendance {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.EmployeeName, r.Date, r.Status)
	}
	tw.Flush()
}

// formFailure renders a rejected submit: the form error plus field messages
func formFailure(cmd *cobra.Command, formError string, err error) error {
	var verr *console.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Names() {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f, verr.Fields[f])
		}
	}
	if formError == "" {
		formError = err.Error()
	}
	return errors.New(formError)
}

// confirm asks a yes/no question on the command's streams
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
