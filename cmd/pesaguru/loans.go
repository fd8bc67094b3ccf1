package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/loans"
)

func newLoansCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "loans",
		Short:   "Compare mobile loan costs for an amount and term",
		Example: "  pesaguru loans --amount 10000 --days 30",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("amount")
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				return err
			}
			days, _ := cmd.Flags().GetInt("days")

			quotes, err := loans.Compare(amount, days, nil)
			if err != nil {
				return err
			}
			app.log.Debug().Str("amount", amount.String()).Int("days", days).Int("quotes", len(quotes)).Msg("Compared loans")
			return writeJSON(cmd.OutOrStdout(), quotes)
		},
	}

	cmd.Flags().String("amount", "", "loan amount in KES")
	cmd.Flags().Int("days", 30, "loan term in days")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
