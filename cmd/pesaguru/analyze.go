package main

import (
	"github.com/spf13/cobra"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/portfolio"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [portfolio.json]",
		Short: "Compute portfolio risk metrics",
		Long: `Compute weighted risk, volatility, diversification, liquidity, Value at Risk,
expected return, Sharpe ratio and beta for a portfolio. The risk-free and
inflation rates come from the current market snapshot.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.portfolioArg(cmd, args)
			if err != nil {
				return err
			}
			snapshot, err := app.container.Market.CurrentSnapshot(cmd.Context())
			if err != nil {
				return err
			}

			opts := portfolio.OptionsFromSnapshot(snapshot)
			opts.PortfolioValue, _ = cmd.Flags().GetFloat64("value")
			opts.Confidence, _ = cmd.Flags().GetFloat64("confidence")
			opts.HorizonDays, _ = cmd.Flags().GetInt("horizon-days")
			opts.Simulate, _ = cmd.Flags().GetBool("simulate")

			m, err := app.container.Analyzer.CalculatePortfolioMetrics(cmd.Context(), p, opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), m)
		},
	}

	cmd.Flags().String("user", "", "analyze the stored portfolio of this user")
	cmd.Flags().Float64("value", 0, "portfolio value in KES (default: from portfolio)")
	cmd.Flags().Float64("confidence", 0, "VaR confidence level (default: VAR_CONFIDENCE)")
	cmd.Flags().Int("horizon-days", 0, "VaR horizon in trading days (default: VAR_HORIZON_DAYS)")
	cmd.Flags().Bool("simulate", false, "attach a Monte Carlo projection")
	return cmd
}

func newSimulateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [portfolio.json]",
		Short: "Run a Monte Carlo projection of portfolio value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.portfolioArg(cmd, args)
			if err != nil {
				return err
			}
			snapshot, err := app.container.Market.CurrentSnapshot(cmd.Context())
			if err != nil {
				return err
			}

			value, _ := cmd.Flags().GetFloat64("value")
			opts := portfolio.SimulationOptions{InflationRate: snapshot.InflationRate / 100}
			opts.Simulations, _ = cmd.Flags().GetInt("simulations")
			opts.Months, _ = cmd.Flags().GetInt("months")

			result, err := app.container.Analyzer.Simulate(cmd.Context(), p, value, opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().String("user", "", "simulate the stored portfolio of this user")
	cmd.Flags().Float64("value", 0, "starting value in KES (default: from portfolio)")
	cmd.Flags().Int("simulations", 0, "number of paths (default: MONTE_CARLO_SIMULATIONS)")
	cmd.Flags().Int("months", 0, "projection length in months (default: MONTE_CARLO_MONTHS)")
	return cmd
}

func newSuitabilityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suitability [portfolio.json]",
		Short: "Score how well a portfolio fits a user's risk profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.portfolioArg(cmd, args)
			if err != nil {
				return err
			}

			var user domain.UserRiskProfile
			userID, _ := cmd.Flags().GetString("user")
			if cmd.Flags().Changed("risk-score") {
				score, _ := cmd.Flags().GetFloat64("risk-score")
				user = domain.UserRiskProfile{
					UserID:             userID,
					RiskToleranceScore: score,
					RiskProfile:        domain.CategoryForScore(score),
				}
			} else {
				user, err = app.container.RiskProfiles.GetRiskProfile(cmd.Context(), userID)
				if err != nil {
					return err
				}
			}

			s, err := app.container.Analyzer.EvaluatePortfolioSuitability(cmd.Context(), p, user)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), s)
		},
	}

	cmd.Flags().String("user", "", "user whose stored risk profile (and portfolio, without a file) is used")
	cmd.Flags().Float64("risk-score", 0, "evaluate against this 0-100 risk tolerance score instead of a stored profile")
	return cmd
}
