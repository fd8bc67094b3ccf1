package main

import (
	"github.com/spf13/cobra"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

type questionnaireInput struct {
	UserID     string                `json:"user_id"`
	Responses  map[string]int        `json:"responses"`
	Attributes domain.RiskAttributes `json:"attributes"`
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage financial and risk profiles",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "submit <questionnaire.json>",
			Short: "Score a risk questionnaire and store the result",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var in questionnaireInput
				if err := readJSON(args[0], &in); err != nil {
					return err
				}
				p, err := app.container.RiskProfiles.SubmitQuestionnaire(cmd.Context(), in.UserID, in.Responses, in.Attributes)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), p)
			},
		},
		&cobra.Command{
			Use:   "show <user-id>",
			Short: "Show the current risk profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := app.container.RiskProfiles.GetRiskProfile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), p)
			},
		},
		&cobra.Command{
			Use:   "update <user-id> <updates.json>",
			Short: "Apply attribute changes and recalculate the risk profile",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				var updates map[string]any
				if err := readJSON(args[1], &updates); err != nil {
					return err
				}
				p, err := app.container.RiskProfiles.UpdateProfile(cmd.Context(), args[0], updates)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), p)
			},
		},
		&cobra.Command{
			Use:   "history <user-id>",
			Short: "List every stored risk profile version",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				history, err := app.container.Profiles.GetRiskProfileHistory(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), history)
			},
		},
		&cobra.Command{
			Use:   "import <financial-profile.json>",
			Short: "Validate and store a financial profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var in domain.UserFinancialProfile
				if err := readJSON(args[0], &in); err != nil {
					return err
				}
				p, err := domain.NewUserFinancialProfile(in)
				if err != nil {
					return err
				}
				if err := app.container.Profiles.SaveFinancialProfile(cmd.Context(), p); err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), p)
			},
		},
		&cobra.Command{
			Use:   "portfolio <user-id> <portfolio.json>",
			Short: "Validate and store a user's portfolio",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := readPortfolio(args[1])
				if err != nil {
					return err
				}
				if err := app.container.Analyzer.Validate(p); err != nil {
					return err
				}
				if err := app.container.Profiles.SavePortfolio(cmd.Context(), args[0], p); err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), p)
			},
		},
	)

	return cmd
}
