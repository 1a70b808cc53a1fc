package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func dashboardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Headcount, today's attendance and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := a.summary.Load(cmd.Context())
			if err != nil {
				return errors.New(view.Err)
			}
			renderSummary(cmd.OutOrStdout(), view.Summary)
			return nil
		},
	}
}
