package portfolio

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/catalog"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

// SimulationOptions tunes a Monte Carlo run. Zero values use the analyzer defaults.
type SimulationOptions struct {
	Simulations   int
	Months        int
	InflationRate float64 // annual fraction used for the success target
}

// SimulationResult summarizes the distribution of terminal portfolio values
type SimulationResult struct {
	Simulations        int     `json:"simulations"`
	Months             int     `json:"months"`
	InitialValue       float64 `json:"initial_value"`
	Target             float64 `json:"target"` // inflation-adjusted initial value
	WorstCase          float64 `json:"worst_case"`
	Median             float64 `json:"median"`
	BestCase           float64 `json:"best_case"`
	Mean               float64 `json:"mean"`
	SuccessProbability float64 `json:"success_probability"`
}

// Simulate runs a Monte Carlo projection of the portfolio value. Worst and best
// case are the 5th and 95th percentiles of terminal values.
func (a *Analyzer) Simulate(ctx context.Context, p domain.Portfolio, totalValue float64, opts SimulationOptions) (SimulationResult, error) {
	holdings, err := resolve(p, a.catalog.View())
	if err != nil {
		return SimulationResult{}, err
	}
	return a.simulate(ctx, holdings, a.portfolioValue(p, totalValue), opts)
}

func (a *Analyzer) simulate(ctx context.Context, holdings []holding, value float64, opts SimulationOptions) (SimulationResult, error) {
	n := opts.Simulations
	if n <= 0 {
		n = a.cfg.Simulations
	}
	months := opts.Months
	if months <= 0 {
		months = a.cfg.Months
	}

	annualReturn := weighted(holdings, func(e catalog.Entry) float64 { return e.ExpectedReturn })
	annualVol := weighted(holdings, func(e catalog.Entry) float64 { return e.Volatility })
	mean, vol := formulas.MonthlyParameters(annualReturn, annualVol)

	finals := make([]float64, n)
	batches := min(a.cfg.Workers, n)
	size := (n + batches - 1) / batches

	g, gctx := errgroup.WithContext(ctx)
	for b := 0; b < batches; b++ {
		start := b * size
		end := min(start+size, n)
		if start >= end {
			break
		}
		sampler := a.samplers(b)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				finals[i] = formulas.SimulatePath(value, mean, vol, months, sampler)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SimulationResult{}, fmt.Errorf("simulation cancelled: %w", err)
	}

	sort.Float64s(finals)
	target := formulas.InflationTarget(value, opts.InflationRate, months)

	successes := 0
	for _, v := range finals {
		if v > target {
			successes++
		}
	}

	result := SimulationResult{
		Simulations:        n,
		Months:             months,
		InitialValue:       value,
		Target:             formulas.Round(target, 2),
		WorstCase:          formulas.Round(formulas.PercentileSorted(finals, 0.05), 2),
		Median:             formulas.Round(formulas.PercentileSorted(finals, 0.50), 2),
		BestCase:           formulas.Round(formulas.PercentileSorted(finals, 0.95), 2),
		Mean:               formulas.Round(formulas.Mean(finals), 2),
		SuccessProbability: float64(successes) / float64(n),
	}

	a.log.Debug().
		Int("simulations", n).
		Int("months", months).
		Float64("median", result.Median).
		Float64("success_probability", result.SuccessProbability).
		Msg("Monte Carlo simulation complete")

	return result, nil
}
