package market

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

// alternating builds closes whose daily returns flip between +step and -step
func alternating(n int, step float64) []float64 {
	closes := []float64{100}
	for i := 1; i < n; i++ {
		r := step
		if i%2 == 0 {
			r = -step
		}
		closes = append(closes, closes[i-1]*(1+r))
	}
	return closes
}

func TestDeriver_Volatility(t *testing.T) {
	d := NewDeriver(4, zerolog.Nop())

	vol, ok := d.Volatility(alternating(11, 0.01))
	require.True(t, ok)
	assert.InDelta(t, 0.01*math.Sqrt(252), vol, 1e-6)

	_, ok = d.Volatility([]float64{100, 101})
	assert.False(t, ok, "one return is not enough")
}

func TestDeriver_FlatSeriesHasZeroVolatility(t *testing.T) {
	vol, ok := NewDeriver(5, zerolog.Nop()).Volatility([]float64{50, 50, 50, 50, 50, 50})
	require.True(t, ok)
	assert.Equal(t, 0.0, vol)
}

func TestRiskScore(t *testing.T) {
	assert.Equal(t, 0.0, RiskScore(0))
	assert.Equal(t, 50.0, RiskScore(0.25))
	assert.Equal(t, 100.0, RiskScore(0.9), "scores are capped at 100")
}

func TestDeriver_BenchmarkChange(t *testing.T) {
	d := NewDeriver(DefaultWindow, zerolog.Nop())

	change, ok := d.BenchmarkChange([]float64{100, 102, 104, 110})
	require.True(t, ok)
	assert.InDelta(t, 10.0, change, 1e-9)

	_, ok = d.BenchmarkChange([]float64{100})
	assert.False(t, ok)
}

func TestDeriver_FromCloses(t *testing.T) {
	d := NewDeriver(4, zerolog.Nop())

	ind := d.FromCloses(map[string][]float64{
		"equities": alternating(11, 0.01),
		"forex":    {140, 141},
	}, []float64{100, 95})

	assert.Contains(t, ind.RiskScores, "equities")
	assert.NotContains(t, ind.RiskScores, "forex", "short series are skipped")
	assert.InDelta(t, 31.75, ind.RiskScores["equities"], 0.01)
	assert.InDelta(t, -5.0, ind.BenchmarkChange, 1e-9)

	s := ind.ApplyTo(domain.MarketSnapshot{InflationRate: 6.5})
	assert.Equal(t, 6.5, s.InflationRate)
	assert.Equal(t, ind.RiskScores["equities"], s.MarketRiskScore())
}

func TestStaticProvider_ReturnsCopies(t *testing.T) {
	p := NewStaticProvider(domain.MarketSnapshot{VolatilityByMarket: map[string]float64{"equities": 40}})

	s, err := p.CurrentSnapshot(context.Background())
	require.NoError(t, err)
	s.VolatilityByMarket["equities"] = 99

	again, err := p.CurrentSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40.0, again.VolatilityByMarket["equities"])

	p.Set(domain.MarketSnapshot{Sentiment: domain.SentimentNegative})
	again, _ = p.CurrentSnapshot(context.Background())
	assert.Equal(t, domain.SentimentNegative, again.Sentiment)
}

func TestLoadProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.json")
	body := `{
		"snapshot": {"treasury_bill_rate": 15.8, "inflation_rate": 6.9, "sentiment": "neutral"},
		"benchmark": [1800, 1854]
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	p, err := LoadProvider(path, NewDeriver(DefaultWindow, zerolog.Nop()))
	require.NoError(t, err)

	s, err := p.CurrentSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15.8, s.TreasuryBillRate)
	assert.InDelta(t, 3.0, s.BenchmarkChange, 1e-9)
	assert.False(t, s.AsOf.IsZero())

	_, err = LoadProvider(filepath.Join(t.TempDir(), "missing.json"), NewDeriver(0, zerolog.Nop()))
	assert.Error(t, err)
}

func TestLoadProvider_ClosesWithoutBenchmark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.json")
	body := `{"snapshot":{"benchmark_change":8.0},"closes":{"nse":[100,101,99,102,103]}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	p, err := LoadProvider(path, NewDeriver(DefaultWindow, zerolog.Nop()))
	require.NoError(t, err)

	s, err := p.CurrentSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8.0, s.BenchmarkChange)
	assert.Contains(t, s.VolatilityByMarket, "nse")
}
