package main

import (
	"errors"
	"fmt"
	"os"

	"hrms-lite/internal/console"
	"hrms-lite/internal/core/domain"
	"hrms-lite/internal/pkg/logger"

	"github.com/spf13/cobra"
)

type attendanceFlags struct {
	employee uint
	date     string
	status   string
}

func (f *attendanceFlags) register(cmd *cobra.Command) {
	cmd.Flags().UintVar(&f.employee, "employee", 0, "employee record id")
	if err := cmd.MarkFlagRequired("employee"); err != nil {
		fmt.Fprintf(os.Stderr, "Error marking flag required: %v\n", err)
		os.Exit(1)
	}
}

func (f *attendanceFlags) registerFields(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "attendance date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&f.status, "status", "", "Present or Absent")
}

// apply copies the date and status flags the user set onto the form
func (f *attendanceFlags) apply(cmd *cobra.Command, form *console.AttendanceForm) error {
	if cmd.Flags().Changed("date") {
		if err := form.SetDate(f.date); err != nil {
			return fmt.Errorf("--date: %w", err)
		}
	}
	if cmd.Flags().Changed("status") {
		if err := form.SetStatus(domain.AttendanceStatus(f.status)); err != nil {
			return fmt.Errorf("--status: %w", err)
		}
	}
	return nil
}

func attendanceCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Daily attendance per employee",
	}
	cmd.AddCommand(
		attendanceListCommand(a),
		attendanceMarkCommand(a),
		attendanceUpdateCommand(a),
		attendanceDeleteCommand(a),
	)
	return cmd
}

// selectEmployee loads the picker and the employee's attendance into form
func selectEmployee(cmd *cobra.Command, a *app, form *console.AttendanceForm, id uint) error {
	if _, err := a.employees.Refresh(cmd.Context(), console.Query{}); err != nil {
		return errors.New(a.employees.ListError())
	}
	if err := form.SelectEmployee(cmd.Context(), id); err != nil {
		if msg := a.attendance.ListError(); msg != "" {
			return errors.New(msg)
		}
		return err
	}
	return nil
}

func attendanceListCommand(a *app) *cobra.Command {
	flags := &attendanceFlags{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance for one employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := a.newAttendanceForm()
			if err := selectEmployee(cmd, a, form, flags.employee); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			name := ""
			if e, ok := form.SelectedEmployee(); ok {
				name = e.FullName
				fmt.Fprintf(out, "%s\n\n", console.EmployeeLabel(e))
			}

			snap := a.attendance.Snapshot()
			counts := console.CountAttendance(snap.Records)
			visible := console.VisibleAttendance(snap.Records, flags.date)
			if len(visible) == 0 {
				if flags.date != "" {
					fmt.Fprintf(out, "No attendance records for %s.\n", flags.date)
				} else {
					fmt.Fprintln(out, "No records found. Mark attendance to populate this list.")
				}
			} else {
				renderAttendance(out, name, visible)
			}

			plural := "s"
			if counts.Total == 1 {
				plural = ""
			}
			fmt.Fprintf(out, "\n%d record%s, %d present, %d absent", counts.Total, plural, counts.Present, counts.Absent)
			if counts.Unknown > 0 {
				fmt.Fprintf(out, ", %d unknown", counts.Unknown)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.date, "date", "", "show only this date (YYYY-MM-DD)")
	return cmd
}

func attendanceMarkCommand(a *app) *cobra.Command {
	flags := &attendanceFlags{}
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Mark attendance for an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := a.newAttendanceForm()
			if err := selectEmployee(cmd, a, form, flags.employee); err != nil {
				return err
			}
			if _, ok := form.SelectedEmployee(); !ok {
				return errors.New(console.MsgEmployeeNotInList)
			}
			if err := flags.apply(cmd, form); err != nil {
				return err
			}
			return submitAttendance(cmd, form)
		},
	}
	flags.register(cmd)
	flags.registerFields(cmd)
	return cmd
}

func attendanceUpdateCommand(a *app) *cobra.Command {
	flags := &attendanceFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update the date or status of an attendance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			form := a.newAttendanceForm()
			if err := selectEmployee(cmd, a, form, flags.employee); err != nil {
				return err
			}

			var record *domain.Attendance
			for _, r := range a.attendance.Snapshot().Records {
				if r.ID == id {
					record = &r
					break
				}
			}
			if record == nil {
				return errors.New(console.MsgAttendanceNotInList)
			}

			if err := form.BeginEdit(*record); err != nil {
				return err
			}
			if err := flags.apply(cmd, form); err != nil {
				return err
			}
			return submitAttendance(cmd, form)
		},
	}
	flags.register(cmd)
	flags.registerFields(cmd)
	return cmd
}

func attendanceDeleteCommand(a *app) *cobra.Command {
	flags := &attendanceFlags{}
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an attendance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			form := a.newAttendanceForm()
			if err := selectEmployee(cmd, a, form, flags.employee); err != nil {
				return err
			}
			if !yes && !confirm(cmd, console.MsgConfirmDeleteAttendance) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := a.attendance.Remove(cmd.Context(), id); err != nil {
				return errors.New(a.attendance.ListError())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Attendance record deleted.")
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func submitAttendance(cmd *cobra.Command, form *console.AttendanceForm) error {
	err := form.Submit(cmd.Context())
	for _, e := range form.Effects() {
		logger.Debug().Str("focus", string(e.Focus)).Msg("form effect")
	}
	if err != nil {
		return formFailure(cmd, form.FormError(), err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), form.Success())
	return nil
}
