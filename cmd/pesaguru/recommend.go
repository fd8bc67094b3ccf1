package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

func newRecommendCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend [financial-profile.json]",
		Short: "Generate a personalized allocation with product picks",
		Example: `  pesaguru recommend profile.json
  pesaguru recommend --user wanjiru --market-file market.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var profile domain.UserFinancialProfile
			if len(args) == 1 {
				if err := readJSON(args[0], &profile); err != nil {
					return err
				}
			} else {
				userID, _ := cmd.Flags().GetString("user")
				if userID == "" {
					return fmt.Errorf("provide a financial profile file or --user")
				}
				var err error
				if profile, err = app.container.Profiles.GetFinancialProfile(cmd.Context(), userID); err != nil {
					return err
				}
			}

			snapshot, err := app.container.Market.CurrentSnapshot(cmd.Context())
			if err != nil {
				return err
			}

			result, err := app.container.Recommendations.GenerateRecommendations(profile, snapshot)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().String("user", "", "use the stored financial profile of this user")
	return cmd
}
