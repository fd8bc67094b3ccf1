package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readPortfolio loads a portfolio file. Files listing only assets get their
// allocations derived from holding amounts.
func readPortfolio(path string) (domain.Portfolio, error) {
	var p domain.Portfolio
	if err := readJSON(path, &p); err != nil {
		return domain.Portfolio{}, err
	}
	if len(p.Allocations) == 0 && len(p.Assets) > 0 {
		derived := domain.PortfolioFromAssets(p.Assets)
		if p.TotalValue > 0 {
			derived.TotalValue = p.TotalValue
		}
		return derived, nil
	}
	return p, nil
}

// portfolioArg resolves the portfolio from a file argument or the --user flag
func (a *App) portfolioArg(cmd *cobra.Command, args []string) (domain.Portfolio, error) {
	if len(args) == 1 {
		return readPortfolio(args[0])
	}
	userID, _ := cmd.Flags().GetString("user")
	if userID == "" {
		return domain.Portfolio{}, fmt.Errorf("provide a portfolio file or --user")
	}
	return a.container.Profiles.GetPortfolio(cmd.Context(), userID)
}
