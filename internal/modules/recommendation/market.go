package recommendation

import (
	"fmt"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

const (
	highTreasuryRate       = 12.0 // percent
	treasuryShift          = 0.05
	strongBenchmarkGain    = 5.0 // percent
	benchmarkMomentumShift = 0.03
)

// AdjustForMarket applies the market-driven shifts to a normalized allocation
// and returns a note for each shift applied. Notes report the share actually
// moved, which is less than the nominal shift when the source runs short.
func AdjustForMarket(alloc Allocation, snapshot domain.MarketSnapshot) []string {
	var notes []string

	if rate := snapshot.ShortTermRate(); rate > highTreasuryRate {
		moved := min(treasuryShift, alloc[Equities])
		alloc.Shift(Equities, Bonds, treasuryShift)
		notes = append(notes, fmt.Sprintf("Treasury rates at %.2f%% favour government securities; moved %s from equities to bonds.",
			rate, percent(moved)))
	}

	if snapshot.BenchmarkChange > strongBenchmarkGain {
		moved := min(benchmarkMomentumShift, alloc[MoneyMarket])
		alloc.Shift(MoneyMarket, Equities, benchmarkMomentumShift)
		notes = append(notes, fmt.Sprintf("The NSE is up %.2f%%; moved %s from money market to equities.",
			snapshot.BenchmarkChange, percent(moved)))
	}

	return notes
}

func percent(share float64) string {
	return fmt.Sprintf("%g%%", formulas.Round(share*100, 2))
}
