package main

import (
	"errors"
	"fmt"
	"strconv"

	"hrms-lite/internal/console"
	"hrms-lite/internal/core/domain"
	"hrms-lite/internal/pkg/logger"

	"github.com/spf13/cobra"
)

type employeeFlags struct {
	code       string
	name       string
	email      string
	department string
	joined     string
}

func (f *employeeFlags) register(cmd *cobra.Command, withCode bool) {
	if withCode {
		cmd.Flags().StringVar(&f.code, "code", "", "employee code, e.g. EMP-001")
	}
	cmd.Flags().StringVar(&f.name, "name", "", "full name")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.department, "department", "", "department")
	cmd.Flags().StringVar(&f.joined, "joined", "", "date of joining (YYYY-MM-DD), defaults to today")
}

// apply copies the flags the user set onto the form
func (f *employeeFlags) apply(cmd *cobra.Command, form *console.EmployeeForm) error {
	setters := []struct {
		flag string
		set  func(string) error
		val  string
	}{
		{"code", form.SetEmployeeCode, f.code},
		{"name", form.SetFullName, f.name},
		{"email", form.SetEmail, f.email},
		{"department", form.SetDepartment, f.department},
		{"joined", form.SetDateOfJoining, f.joined},
	}
	for _, s := range setters {
		if cmd.Flags().Lookup(s.flag) == nil || !cmd.Flags().Changed(s.flag) {
			continue
		}
		if err := s.set(s.val); err != nil {
			return fmt.Errorf("--%s: %w", s.flag, err)
		}
	}
	return nil
}

func employeesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "Employee directory",
	}
	cmd.AddCommand(
		employeesListCommand(a),
		employeesCreateCommand(a),
		employeesUpdateCommand(a),
		employeesDeleteCommand(a),
	)
	return cmd
}

func employeesListCommand(a *app) *cobra.Command {
	var search string
	var byDepartment bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := a.employees.Refresh(cmd.Context(), console.Query{})
			if err != nil {
				return errors.New(a.employees.ListError())
			}

			out := cmd.OutOrStdout()
			if byDepartment {
				renderDepartments(out, console.CountByDepartment(snap.Records))
				return nil
			}

			visible := console.VisibleEmployees(snap.Records, search)
			if len(visible) == 0 {
				if search != "" {
					fmt.Fprintf(out, "No employees match %q.\n", search)
				} else {
					fmt.Fprintln(out, "No employees yet. Create one to get started.")
				}
				return nil
			}
			renderEmployees(out, visible)
			fmt.Fprintf(out, "\n%d of %d employees\n", len(visible), snap.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "filter by code, name, email or department")
	cmd.Flags().BoolVar(&byDepartment, "by-department", false, "show headcount per department")
	return cmd
}

func employeesCreateCommand(a *app) *cobra.Command {
	flags := &employeeFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := a.newEmployeeForm()
			if err := flags.apply(cmd, form); err != nil {
				return err
			}
			return submitEmployee(cmd, form)
		},
	}
	flags.register(cmd, true)
	return cmd
}

func employeesUpdateCommand(a *app) *cobra.Command {
	flags := &employeeFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an employee (the employee code cannot change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			employee, err := findEmployee(cmd, a, id)
			if err != nil {
				return err
			}

			form := a.newEmployeeForm()
			if err := form.BeginEdit(employee); err != nil {
				return err
			}
			if err := flags.apply(cmd, form); err != nil {
				return err
			}
			return submitEmployee(cmd, form)
		},
	}
	flags.register(cmd, false)
	return cmd
}

func employeesDeleteCommand(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee (attendance records are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := a.employees.Refresh(cmd.Context(), console.Query{}); err != nil {
				return errors.New(a.employees.ListError())
			}
			if !yes && !confirm(cmd, console.MsgConfirmDeleteEmployee) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := a.employees.Remove(cmd.Context(), id); err != nil {
				return errors.New(a.employees.ListError())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Employee deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func submitEmployee(cmd *cobra.Command, form *console.EmployeeForm) error {
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

// findEmployee loads the directory and returns employee id from it
func findEmployee(cmd *cobra.Command, a *app, id uint) (domain.Employee, error) {
	snap, err := a.employees.Refresh(cmd.Context(), console.Query{})
	if err != nil {
		return domain.Employee{}, errors.New(a.employees.ListError())
	}
	for _, e := range snap.Records {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Employee{}, errors.New(console.MsgEmployeeNotInList)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}
