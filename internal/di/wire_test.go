package di

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/config"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/market"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataDir:            t.TempDir(),
		LogLevel:           "info",
		MarketCondition:    domain.MarketBearish,
		MonteCarlo:         config.MonteCarloConfig{Simulations: 200, Months: 12, Workers: 2, Seed: 7},
		VaR:                config.VaRConfig{Confidence: 0.95, HorizonDays: 1},
		AlertSweepSchedule: "0 */6 * * *",
	}
}

func TestWire(t *testing.T) {
	provider := market.NewStaticProvider(domain.MarketSnapshot{InflationRate: 8})

	container, jobs, err := Wire(testConfig(t), provider, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	assert.NotNil(t, container.DB)
	assert.NotNil(t, container.Profiles)
	assert.Equal(t, domain.MarketBearish, container.MarketConditions.Current())
	assert.Equal(t, "rule_based", container.Recommendations.Strategy())
	assert.Equal(t, 200, container.Analyzer.Config().Simulations)
	assert.Equal(t, 2, jobs.Scheduler.Entries())

	entry, err := container.Catalog.GetInvestmentRisk("crypto")
	require.NoError(t, err)
	assert.InDelta(t, 5.5, entry.RiskScore, 1e-9)
}

func TestInitializeDatabases(t *testing.T) {
	container, err := InitializeDatabases(testConfig(t), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.DB.Close() })

	assert.NoError(t, container.DB.QuickCheck(context.Background()))
	assert.FileExists(t, container.DB.Path())
}

func TestWire_EndToEnd(t *testing.T) {
	ctx := context.Background()
	provider := market.NewStaticProvider(domain.MarketSnapshot{InflationRate: 8})

	container, jobs, err := Wire(testConfig(t), provider, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	require.NoError(t, container.Profiles.SaveFinancialProfile(ctx, domain.UserFinancialProfile{UserID: "njeri", Income: 80_000}))
	require.NoError(t, container.Profiles.SavePortfolio(ctx, "njeri", domain.NewPortfolio(map[string]float64{
		"treasury_bills": 50,
		"nse_blue_chips": 50,
	})))

	_, err = container.RiskProfiles.SubmitQuestionnaire(ctx, "njeri", map[string]int{"q1": 3, "q2": 3}, domain.RiskAttributes{})
	require.NoError(t, err)

	summary, err := jobs.AlertSweep.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Users)
	assert.Zero(t, summary.Failed)
	assert.GreaterOrEqual(t, summary.ByUser["njeri"], 3, "two concentration alerts plus inflation")

	assert.NoError(t, jobs.Scheduler.RunNow(jobs.WALCheckpoints))
}

func TestWire_InvalidModelFallsBack(t *testing.T) {
	cfg := testConfig(t)
	cfg.ModelPath = cfg.DataDir + "/missing-model.json"

	container, _, err := Wire(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	assert.Equal(t, "rule_based", container.Recommendations.Strategy())

	s, err := container.Market.CurrentSnapshot(context.Background())
	require.NoError(t, err)
	assert.False(t, s.AsOf.IsZero())
}
