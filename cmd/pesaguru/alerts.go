package main

import (
	"github.com/spf13/cobra"
)

func newAlertsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts <user-id>",
		Short: "List the risk alerts that currently apply to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alerts, err := app.container.Alerts.GetRiskAlerts(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), alerts)
		},
	}
}
