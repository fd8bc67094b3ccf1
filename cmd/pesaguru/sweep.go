package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newSweepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate alerts for every stored user",
		Long: `Evaluate alerts for every stored user once and print the summary. With
--serve, keep running and sweep on ALERT_SWEEP_SCHEDULE until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serve, _ := cmd.Flags().GetBool("serve")
			if !serve {
				summary, err := app.jobs.AlertSweep.Sweep(cmd.Context())
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), summary)
			}

			app.jobs.Scheduler.Start()
			app.log.Info().Str("schedule", app.cfg.AlertSweepSchedule).Msg("Alert sweep scheduled, waiting for shutdown signal")

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			app.log.Info().Msg("Shutting down")
			app.jobs.Scheduler.Stop()
			return nil
		},
	}

	cmd.Flags().Bool("serve", false, "run the scheduler until interrupted")
	return cmd
}
