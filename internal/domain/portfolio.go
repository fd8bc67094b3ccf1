package domain

// AllocationTolerance is the allowed deviation of a portfolio sum from 100%
const AllocationTolerance = 0.01

// Asset is a concrete holding inside a portfolio
type Asset struct {
	Type   string  `json:"type" validate:"required"`
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

// Portfolio maps investment types to allocation percentages (0-100)
type Portfolio struct {
	Allocations map[string]float64 `json:"allocations"`
	Assets      []Asset             `json:"assets,omitempty"`
	TotalValue  float64             `json:"total_value,omitempty"`
}

// NewPortfolio builds a portfolio from an allocation percentage map
func NewPortfolio(allocations map[string]float64) Portfolio {
	copied := make(map[string]float64, len(allocations))
	for k, v := range allocations {
		copied[k] = v
	}
	return Portfolio{Allocations: copied}
}

// PortfolioFromAssets derives percentage allocations from holding amounts
func PortfolioFromAssets(assets []Asset) Portfolio {
	total := 0.0
	byType := make(map[string]float64)
	for _, a := range assets {
		total += a.Amount
		byType[a.Type] += a.Amount
	}

	allocations := make(map[string]float64, len(byType))
	for t, amount := range byType {
		if total > 0 {
			allocations[t] = amount / total * 100
		}
	}

	return Portfolio{
		Allocations: allocations,
		Assets:      append([]Asset(nil), assets...),
		TotalValue:  total,
	}
}

// Sum returns the total allocation percentage
func (p Portfolio) Sum() float64 {
	sum := 0.0
	for _, pct := range p.Allocations {
		sum += pct
	}
	return sum
}

// Types returns investment types in sorted order
func (p Portfolio) Types() []string {
	return SortedKeys(p.Allocations)
}

// Fraction returns the allocation of a type as a 0-1 fraction
func (p Portfolio) Fraction(investmentType string) float64 {
	return p.Allocations[investmentType] / 100
}

// Value returns the explicit total value, or the sum of holdings
func (p Portfolio) Value() float64 {
	if p.TotalValue > 0 {
		return p.TotalValue
	}
	total := 0.0
	for _, a := range p.Assets {
		total += a.Amount
	}
	return total
}
