// Package main is the PesaGuru risk and recommendation engine CLI.
//
// Every command reads JSON inputs from files or the profile store and writes
// JSON results to stdout. Logs go to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/config"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/di"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// App carries the wired dependencies for one command invocation
type App struct {
	cfg       *config.Config
	log       zerolog.Logger
	container *di.Container
	jobs      *di.JobInstances
}

func newRootCmd() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:   "pesaguru",
		Short: "PesaGuru risk profiling, portfolio analysis and recommendations",
		Long: `PesaGuru scores investor risk tolerance, analyzes portfolio risk against
the Kenyan investment catalog, generates personalized allocations and raises
risk alerts. Results are printed as JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.container.Close()
		},
	}

	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().String("market-condition", "", "market condition override (normal, volatile, bullish, bearish)")
	root.PersistentFlags().String("market-file", "", "market snapshot file override")
	root.PersistentFlags().String("data-dir", "", "data directory override")

	root.AddCommand(
		newProfileCmd(app),
		newCatalogCmd(app),
		newAnalyzeCmd(app),
		newSimulateCmd(app),
		newSuitabilityCmd(app),
		newRecommendCmd(app),
		newAlertsCmd(app),
		newLoansCmd(app),
		newSweepCmd(app),
	)

	return root
}

func (a *App) setup(cmd *cobra.Command) error {
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		os.Setenv("PESAGURU_DATA_DIR", dir)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if condition, _ := cmd.Flags().GetString("market-condition"); condition != "" {
		cfg.MarketCondition = domain.MarketCondition(condition)
	}
	if path, _ := cmd.Flags().GetString("market-file"); path != "" {
		cfg.MarketDataPath = path
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: cmd.ErrOrStderr(),
	})
	logger.SetGlobalLogger(a.log)

	a.container, a.jobs, err = di.Wire(cfg, nil, a.log)
	if err != nil {
		return err
	}
	return nil
}
