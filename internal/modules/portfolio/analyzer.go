// Package portfolio analyzes portfolio risk: weighted scores, Value at Risk,
// Sharpe ratio, beta, Monte Carlo outcomes and suitability for a user.
package portfolio

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/catalog"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

// Config holds analyzer defaults
type Config struct {
	VaRConfidence         float64
	VaRHorizonDays        int
	DefaultPortfolioValue float64 // KES, used when a portfolio carries no value
	Simulations           int
	Months                int
	Workers               int // parallel Monte Carlo batches
}

// DefaultConfig returns the standard analyzer configuration
func DefaultConfig() Config {
	return Config{
		VaRConfidence:         0.95,
		VaRHorizonDays:        1,
		DefaultPortfolioValue: 100_000,
		Simulations:           1000,
		Months:                60,
		Workers:               4,
	}
}

// Analyzer computes portfolio risk metrics.
//
// Every computation validates the portfolio first and reads the catalog
// through a single View, so the whole analysis sees one market condition.
// Apart from the catalog's market condition the analyzer holds no mutable
// state and is safe for concurrent use.
//
// Dependencies:
//   - catalog.Catalog: market-adjusted risk, volatility, return and beta per type
//   - formulas.SamplerFactory: random source for Monte Carlo batches
type Analyzer struct {
	catalog  *catalog.Catalog
	cfg      Config
	samplers formulas.SamplerFactory
	log      zerolog.Logger
}

// NewAnalyzer creates a new portfolio analyzer. A nil sampler factory uses a
// randomly seeded one.
func NewAnalyzer(cat *catalog.Catalog, cfg Config, samplers formulas.SamplerFactory, log zerolog.Logger) *Analyzer {
	defaults := DefaultConfig()
	if cfg.VaRConfidence <= 0 || cfg.VaRConfidence >= 1 {
		cfg.VaRConfidence = defaults.VaRConfidence
	}
	if cfg.VaRHorizonDays <= 0 {
		cfg.VaRHorizonDays = defaults.VaRHorizonDays
	}
	if cfg.DefaultPortfolioValue <= 0 {
		cfg.DefaultPortfolioValue = defaults.DefaultPortfolioValue
	}
	if cfg.Simulations <= 0 {
		cfg.Simulations = defaults.Simulations
	}
	if cfg.Months <= 0 {
		cfg.Months = defaults.Months
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaults.Workers
	}
	if samplers == nil {
		samplers = formulas.NewRandomSamplerFactory()
	}

	return &Analyzer{
		catalog:  cat,
		cfg:      cfg,
		samplers: samplers,
		log:      log.With().Str("component", "portfolio_analyzer").Logger(),
	}
}

// Config returns the effective analyzer configuration
func (a *Analyzer) Config() Config {
	return a.cfg
}

// holding is one validated allocation joined with its catalog entry
type holding struct {
	fraction float64
	entry    catalog.Entry
}

// resolve validates the portfolio against the catalog view and returns its
// non-zero holdings in sorted type order. No computation happens on invalid input.
func resolve(p domain.Portfolio, view catalog.View) ([]holding, error) {
	if len(p.Allocations) == 0 {
		return nil, &domain.InvalidPortfolioError{Reason: "portfolio has no allocations"}
	}

	holdings := make([]holding, 0, len(p.Allocations))
	for _, t := range p.Types() {
		pct := p.Allocations[t]
		if pct < 0 || math.IsNaN(pct) {
			return nil, &domain.InvalidPortfolioError{Reason: "negative allocation", Key: t}
		}
		entry, err := view.Get(t)
		if err != nil {
			return nil, &domain.InvalidPortfolioError{Reason: "unknown investment type", Key: t}
		}
		if pct > 0 {
			holdings = append(holdings, holding{fraction: pct / 100, entry: entry})
		}
	}

	if sum := p.Sum(); math.Abs(sum-100) > domain.AllocationTolerance {
		return nil, &domain.InvalidPortfolioError{Reason: "allocations must sum to 100", Sum: sum}
	}
	return holdings, nil
}

// Validate reports whether the portfolio is acceptable for analysis
func (a *Analyzer) Validate(p domain.Portfolio) error {
	_, err := resolve(p, a.catalog.View())
	return err
}

// weighted sums fraction × field across holdings
func weighted(holdings []holding, field func(catalog.Entry) float64) float64 {
	total := 0.0
	for _, h := range holdings {
		total += h.fraction * field(h.entry)
	}
	return total
}

func (a *Analyzer) portfolioValue(p domain.Portfolio, override float64) float64 {
	if override > 0 {
		return override
	}
	if v := p.Value(); v > 0 {
		return v
	}
	return a.cfg.DefaultPortfolioValue
}
