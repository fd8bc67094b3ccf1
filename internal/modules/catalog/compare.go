package catalog

import "github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"

// ComparisonSummary highlights the extremes of a comparison
type ComparisonSummary struct {
	LowestRisk          string   `json:"lowest_risk"`
	HighestRisk         string   `json:"highest_risk"`
	LowestMinInvestment string   `json:"lowest_min_investment"`
	HighLiquidity       []string `json:"high_liquidity"`
}

// Comparison is a side-by-side view of several investment types
type Comparison struct {
	Condition domain.MarketCondition `json:"market_condition"`
	Rows      []Entry                `json:"rows"`
	Summary   ComparisonSummary      `json:"summary"`
}

// CompareInvestments tabulates the requested types in input order.
// Any unknown type fails the whole comparison. Ties keep the first occurrence.
func (c *Catalog) CompareInvestments(types []string) (Comparison, error) {
	view := c.View()
	cmp := Comparison{
		Condition: view.Condition(),
		Rows:      make([]Entry, 0, len(types)),
		Summary:   ComparisonSummary{HighLiquidity: []string{}},
	}

	for _, t := range types {
		e, err := view.Get(t)
		if err != nil {
			return Comparison{}, err
		}
		cmp.Rows = append(cmp.Rows, e)
	}

	if len(cmp.Rows) == 0 {
		return cmp, nil
	}

	lowest, highest, cheapest := cmp.Rows[0], cmp.Rows[0], cmp.Rows[0]
	for _, e := range cmp.Rows {
		if e.RiskScore < lowest.RiskScore {
			lowest = e
		}
		if e.RiskScore > highest.RiskScore {
			highest = e
		}
		if e.MinInvestment < cheapest.MinInvestment {
			cheapest = e
		}
		if e.Liquidity == domain.LiquidityHigh {
			cmp.Summary.HighLiquidity = append(cmp.Summary.HighLiquidity, e.InvestmentType)
		}
	}

	cmp.Summary.LowestRisk = lowest.InvestmentType
	cmp.Summary.HighestRisk = highest.InvestmentType
	cmp.Summary.LowestMinInvestment = cheapest.InvestmentType

	c.log.Debug().
		Int("count", len(cmp.Rows)).
		Str("lowest_risk", cmp.Summary.LowestRisk).
		Str("highest_risk", cmp.Summary.HighestRisk).
		Msg("Compared investments")

	return cmp, nil
}
