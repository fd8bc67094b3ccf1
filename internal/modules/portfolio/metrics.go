package portfolio

import (
	"context"
	"fmt"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/catalog"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

const (
	diversificationPerAsset = 20.0
	maxDiversification      = 100.0
)

// ValueAtRisk is a parametric VaR estimate. Amount and Percentage are never negative.
type ValueAtRisk struct {
	Amount      float64 `json:"amount"`
	Percentage  float64 `json:"percentage"`
	Confidence  float64 `json:"confidence"`
	HorizonDays int     `json:"horizon_days"`
}

// Metrics is the computed risk picture of a portfolio
type Metrics struct {
	WeightedRiskScore    float64                      `json:"weighted_risk_score"`
	WeightedVolatility   float64                      `json:"weighted_volatility"`
	RiskProfile          domain.RiskCategory          `json:"risk_profile"`
	DiversificationScore float64                      `json:"diversification_score"`
	LiquidityProfile     map[domain.Liquidity]float64 `json:"liquidity_profile"`
	PortfolioValue       float64                      `json:"portfolio_value"`
	ValueAtRisk          ValueAtRisk                  `json:"value_at_risk"`
	ExpectedReturn       float64                      `json:"expected_return"`
	SharpeRatio          float64                      `json:"sharpe_ratio"`
	Beta                 float64                      `json:"beta"`
	MarketCondition      domain.MarketCondition       `json:"market_condition"`
	MonteCarlo           *SimulationResult            `json:"monte_carlo,omitempty"`
}

// MetricsOptions tunes a single metrics call. Zero values fall back to the
// analyzer configuration.
type MetricsOptions struct {
	PortfolioValue float64
	RiskFreeRate   float64 // annual fraction
	Confidence     float64
	HorizonDays    int
	// Simulate attaches a Monte Carlo summary using InflationRate for the target
	Simulate      bool
	InflationRate float64 // annual fraction
}

// OptionsFromSnapshot fills the market-sourced options from a snapshot
func OptionsFromSnapshot(s domain.MarketSnapshot) MetricsOptions {
	return MetricsOptions{
		RiskFreeRate:  s.RiskFreeRate(),
		InflationRate: s.InflationRate / 100,
	}
}

// CalculatePortfolioMetrics validates the portfolio and computes its risk metrics
func (a *Analyzer) CalculatePortfolioMetrics(ctx context.Context, p domain.Portfolio, opts MetricsOptions) (Metrics, error) {
	view := a.catalog.View()
	holdings, err := resolve(p, view)
	if err != nil {
		return Metrics{}, err
	}

	m := a.metrics(holdings, view, p, opts)

	if opts.Simulate {
		sim, err := a.simulate(ctx, holdings, m.PortfolioValue, SimulationOptions{InflationRate: opts.InflationRate})
		if err != nil {
			return Metrics{}, fmt.Errorf("monte carlo simulation failed: %w", err)
		}
		m.MonteCarlo = &sim
	}

	a.log.Debug().
		Float64("weighted_risk", m.WeightedRiskScore).
		Float64("volatility", m.WeightedVolatility).
		Str("risk_profile", string(m.RiskProfile)).
		Float64("var", m.ValueAtRisk.Amount).
		Msg("Calculated portfolio metrics")

	return m, nil
}

func (a *Analyzer) metrics(holdings []holding, view catalog.View, p domain.Portfolio, opts MetricsOptions) Metrics {
	m := Metrics{
		WeightedRiskScore:  weighted(holdings, func(e catalog.Entry) float64 { return e.RiskScore }),
		WeightedVolatility: weighted(holdings, func(e catalog.Entry) float64 { return e.Volatility }),
		ExpectedReturn:     weighted(holdings, func(e catalog.Entry) float64 { return e.ExpectedReturn }),
		Beta:               weighted(holdings, func(e catalog.Entry) float64 { return e.Beta }),
		MarketCondition:    view.Condition(),
		PortfolioValue:     a.portfolioValue(p, opts.PortfolioValue),
	}

	m.RiskProfile = domain.CategoryForWeightedRisk(m.WeightedRiskScore)
	m.DiversificationScore = DiversificationScore(len(holdings))
	m.LiquidityProfile = liquidityProfile(holdings)
	m.SharpeRatio = formulas.SharpeRatio(m.ExpectedReturn, opts.RiskFreeRate, m.WeightedVolatility)
	m.ValueAtRisk = a.valueAtRisk(m.PortfolioValue, m.WeightedVolatility, opts)

	return m
}

// DiversificationScore is min(100, assets × 20). It ignores weights and
// correlation: five assets at 96/1/1/1/1 score the same as an even split.
func DiversificationScore(assetCount int) float64 {
	return min(maxDiversification, float64(assetCount)*diversificationPerAsset)
}

func liquidityProfile(holdings []holding) map[domain.Liquidity]float64 {
	profile := map[domain.Liquidity]float64{
		domain.LiquidityHigh:   0,
		domain.LiquidityMedium: 0,
		domain.LiquidityLow:    0,
	}
	for _, h := range holdings {
		profile[h.entry.Liquidity] += h.fraction
	}
	return profile
}

func (a *Analyzer) valueAtRisk(value, volatility float64, opts MetricsOptions) ValueAtRisk {
	confidence := opts.Confidence
	if confidence <= 0 || confidence >= 1 {
		confidence = a.cfg.VaRConfidence
	}
	horizon := opts.HorizonDays
	if horizon <= 0 {
		horizon = a.cfg.VaRHorizonDays
	}

	amount := formulas.ParametricVaR(value, volatility, confidence, horizon)
	pct := 0.0
	if value != 0 {
		pct = amount / value * 100
		if pct < 0 {
			pct = -pct
		}
	}

	return ValueAtRisk{
		Amount:      formulas.Round(amount, 2),
		Percentage:  formulas.Round(pct, 4),
		Confidence:  confidence,
		HorizonDays: horizon,
	}
}

// CalculateVaR computes Value at Risk for a portfolio at the given confidence
// and horizon. Zero values use the analyzer defaults.
func (a *Analyzer) CalculateVaR(p domain.Portfolio, value, confidence float64, horizonDays int) (ValueAtRisk, error) {
	view := a.catalog.View()
	holdings, err := resolve(p, view)
	if err != nil {
		return ValueAtRisk{}, err
	}
	vol := weighted(holdings, func(e catalog.Entry) float64 { return e.Volatility })
	return a.valueAtRisk(a.portfolioValue(p, value), vol, MetricsOptions{Confidence: confidence, HorizonDays: horizonDays}), nil
}
