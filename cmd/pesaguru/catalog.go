package main

import (
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the investment risk catalog",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show <investment-type>",
			Short: "Show the market-adjusted risk of one investment type",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				entry, err := app.container.Catalog.GetInvestmentRisk(args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), entry)
			},
		},
		&cobra.Command{
			Use:     "compare [investment-type...]",
			Short:   "Compare investment types side by side",
			Example: "  pesaguru catalog compare treasury_bills nse_blue_chips crypto",
			RunE: func(cmd *cobra.Command, args []string) error {
				types := args
				if len(types) == 0 {
					types = app.container.Catalog.Types()
				}
				comparison, err := app.container.Catalog.CompareInvestments(types)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), comparison)
			},
		},
	)

	return cmd
}
