package portfolio

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/catalog"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

func TestSimulate_Ordering(t *testing.T) {
	a, _ := newTestAnalyzer(t)

	for _, p := range []domain.Portfolio{
		balancedPortfolio(),
		domain.NewPortfolio(map[string]float64{catalog.Crypto: 50, catalog.NSEGrowthStocks: 50}),
		domain.NewPortfolio(map[string]float64{catalog.TreasuryBills: 100}),
	} {
		result, err := a.Simulate(context.Background(), p, 100_000, SimulationOptions{Simulations: 500, Months: 36, InflationRate: 0.06})
		require.NoError(t, err)

		assert.Equal(t, 500, result.Simulations)
		assert.LessOrEqual(t, result.WorstCase, result.Median)
		assert.LessOrEqual(t, result.Median, result.BestCase)
		assert.GreaterOrEqual(t, result.SuccessProbability, 0.0)
		assert.LessOrEqual(t, result.SuccessProbability, 1.0)
	}
}

func TestSimulate_ReproducibleWithSeed(t *testing.T) {
	a1, _ := newTestAnalyzer(t)
	a2, _ := newTestAnalyzer(t)

	opts := SimulationOptions{Simulations: 300, Months: 24, InflationRate: 0.05}
	r1, err := a1.Simulate(context.Background(), balancedPortfolio(), 50_000, opts)
	require.NoError(t, err)
	r2, err := a2.Simulate(context.Background(), balancedPortfolio(), 50_000, opts)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
}

func TestSimulate_ZeroVolatilityIsDeterministic(t *testing.T) {
	cat := catalog.NewWithEntries([]catalog.Entry{
		{InvestmentType: "cash_account", RiskScore: 1, Volatility: 0, Liquidity: domain.LiquidityHigh, ExpectedReturn: 0.12},
	}, nil, zerolog.Nop())
	a := NewAnalyzer(cat, Config{Workers: 3}, formulas.NewSeededSamplerFactory(1), zerolog.Nop())

	result, err := a.Simulate(context.Background(),
		domain.NewPortfolio(map[string]float64{"cash_account": 100}), 100_000,
		SimulationOptions{Simulations: 100, Months: 12, InflationRate: 0.05})
	require.NoError(t, err)

	expected := 100_000 * math.Pow(1.01, 12)
	assert.InDelta(t, expected, result.WorstCase, 0.01)
	assert.InDelta(t, expected, result.Median, 0.01)
	assert.InDelta(t, expected, result.BestCase, 0.01)
	assert.InDelta(t, 105_000, result.Target, 0.01)
	assert.Equal(t, 1.0, result.SuccessProbability)
}

func TestSimulate_Defaults(t *testing.T) {
	a, _ := newTestAnalyzer(t)

	result, err := a.Simulate(context.Background(), balancedPortfolio(), 0, SimulationOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1000, result.Simulations)
	assert.Equal(t, 60, result.Months)
	assert.Equal(t, 100_000.0, result.InitialValue)
}

func TestSimulate_Cancelled(t *testing.T) {
	a, _ := newTestAnalyzer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Simulate(ctx, balancedPortfolio(), 100_000, SimulationOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulate_InvalidPortfolio(t *testing.T) {
	a, _ := newTestAnalyzer(t)

	_, err := a.Simulate(context.Background(), domain.NewPortfolio(map[string]float64{"gold_bars": 100}), 1000, SimulationOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidPortfolio)
}

func TestCalculatePortfolioMetrics_WithSimulation(t *testing.T) {
	a, _ := newTestAnalyzer(t)

	m, err := a.CalculatePortfolioMetrics(context.Background(), balancedPortfolio(), OptionsFromSnapshot(domain.MarketSnapshot{
		TreasuryBillRate: 15.8,
		InflationRate:    6.5,
	}))
	require.NoError(t, err)
	assert.Nil(t, m.MonteCarlo)

	opts := OptionsFromSnapshot(domain.MarketSnapshot{TreasuryBillRate: 15.8, InflationRate: 6.5})
	opts.Simulate = true
	m, err = a.CalculatePortfolioMetrics(context.Background(), balancedPortfolio(), opts)
	require.NoError(t, err)
	require.NotNil(t, m.MonteCarlo)
	assert.LessOrEqual(t, m.MonteCarlo.WorstCase, m.MonteCarlo.BestCase)
	assert.InDelta(t, (0.1316-0.158)/0.108, m.SharpeRatio, 1e-9, "negative excess return gives a negative Sharpe ratio")
}
