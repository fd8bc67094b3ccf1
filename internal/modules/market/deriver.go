// Package market turns raw price history into the normalized market snapshot
// used by the analyzers, and supplies snapshots to the rest of the engine.
package market

import (
	"math"

	"github.com/markcheno/go-talib"
	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

const (
	// DefaultWindow is the lookback in trading days for volatility and ROC
	DefaultWindow = 20

	// maxScoredVolatility is the annualized volatility that maps to a risk score of 100
	maxScoredVolatility = 0.5
)

// Indicators are the values derived from closing prices
type Indicators struct {
	Volatility      map[string]float64 `json:"volatility"` // annualized, fraction
	RiskScores      map[string]float64 `json:"risk_scores"`
	BenchmarkChange float64            `json:"benchmark_change"` // percent
	HasBenchmark    bool               `json:"has_benchmark"`
}

// ApplyTo copies the derived values onto a snapshot
func (ind Indicators) ApplyTo(s domain.MarketSnapshot) domain.MarketSnapshot {
	if len(ind.RiskScores) > 0 {
		s.VolatilityByMarket = make(map[string]float64, len(ind.RiskScores))
		for k, v := range ind.RiskScores {
			s.VolatilityByMarket[k] = v
		}
	}
	if ind.HasBenchmark {
		s.BenchmarkChange = ind.BenchmarkChange
	}
	return s
}

// Deriver computes market indicators from daily closes
type Deriver struct {
	window int
	log    zerolog.Logger
}

// NewDeriver creates a deriver with the given lookback window in trading days
func NewDeriver(window int, log zerolog.Logger) *Deriver {
	if window < 2 {
		window = DefaultWindow
	}
	return &Deriver{
		window: window,
		log:    log.With().Str("component", "market_deriver").Logger(),
	}
}

// Volatility returns the annualized standard deviation of daily returns over
// the window. Series too short for the window use every available return.
func (d *Deriver) Volatility(closes []float64) (float64, bool) {
	returns := formulas.CalculateReturns(closes)
	if len(returns) < 2 {
		return 0, false
	}
	period := min(d.window, len(returns))

	sd := talib.StdDev(returns, period, 1.0)
	last := sd[len(sd)-1]
	if math.IsNaN(last) {
		return 0, false
	}
	return last * math.Sqrt(formulas.TradingDaysPerYear), true
}

// RiskScore maps annualized volatility onto 0-100
func RiskScore(annualVolatility float64) float64 {
	return formulas.Round(formulas.Clamp(annualVolatility/maxScoredVolatility*100, 0, 100), 2)
}

// BenchmarkChange returns the percentage change of the benchmark over the window
func (d *Deriver) BenchmarkChange(closes []float64) (float64, bool) {
	if len(closes) < 2 {
		return 0, false
	}
	period := min(d.window, len(closes)-1)

	roc := talib.Roc(closes, period)
	last := roc[len(roc)-1]
	if math.IsNaN(last) || math.IsInf(last, 0) {
		return 0, false
	}
	return formulas.Round(last, 4), true
}

// FromCloses derives per-market volatility and risk scores plus the benchmark
// change. Markets with fewer than three closes are skipped.
func (d *Deriver) FromCloses(closes map[string][]float64, benchmark []float64) Indicators {
	ind := Indicators{
		Volatility: make(map[string]float64, len(closes)),
		RiskScores: make(map[string]float64, len(closes)),
	}

	for _, name := range domain.SortedKeys(closes) {
		vol, ok := d.Volatility(closes[name])
		if !ok {
			d.log.Warn().Str("market", name).Int("closes", len(closes[name])).Msg("Not enough closes for volatility, skipping market")
			continue
		}
		ind.Volatility[name] = formulas.Round(vol, 6)
		ind.RiskScores[name] = RiskScore(vol)
	}

	if change, ok := d.BenchmarkChange(benchmark); ok {
		ind.BenchmarkChange = change
		ind.HasBenchmark = true
	}

	d.log.Debug().
		Int("markets", len(ind.RiskScores)).
		Float64("benchmark_change", ind.BenchmarkChange).
		Msg("Derived market indicators")

	return ind
}
