package main

import (
	"fmt"
	"os"
	"time"

	"hrms-lite/internal/adapters/remote"
	"hrms-lite/internal/config"
	"hrms-lite/internal/console"
	"hrms-lite/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const programName = "hrms-console"

type globalFlags struct {
	configFile string
	apiURL     string
	timeout    time.Duration
	debug      bool
}

// app wires the console core to the API client for one command run
type app struct {
	employees  *console.EmployeeStore
	attendance *console.AttendanceStore
	summary    *console.Summary
}

func (a *app) newEmployeeForm() *console.EmployeeForm {
	return console.NewEmployeeForm(a.employees)
}

func (a *app) newAttendanceForm() *console.AttendanceForm {
	return console.NewAttendanceForm(a.attendance, a.employees)
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           programName,
		Short:         "Manage employees and daily attendance",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConsole(flags.configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Override config with command line flags
			if cmd.Flags().Changed("api") {
				cfg.APIURL = flags.apiURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = flags.timeout
			}
			level := logger.ParseLevel(cfg.LogLevel)
			if flags.debug {
				level = logger.DebugLevel
			}
			logger.Configure(logger.Config{
				Level:  level,
				Pretty: true,
				Output: os.Stderr,
			})

			client := remote.New(remote.Config{BaseURL: cfg.APIURL, Timeout: cfg.Timeout})
			a.employees = console.NewEmployeeStore(client.Employees())
			a.attendance = console.NewAttendanceStore(client.Attendance())
			a.summary = console.NewSummary(client)
			logger.Debug().Str("api", cfg.APIURL).Dur("timeout", cfg.Timeout).Msg("console configured")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.apiURL, "api", config.DefaultAPIURL, "HRMS API base URL")
	rootCmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", config.DefaultAPITimeout, "request timeout")
	rootCmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "D", false, "enable debug logging")

	rootCmd.AddCommand(employeesCommand(a))
	rootCmd.AddCommand(attendanceCommand(a))
	rootCmd.AddCommand(dashboardCommand(a))
	return rootCmd
}
