// Package recommendation turns a user profile and market snapshot into an
// asset allocation, ranked products and a rationale.
package recommendation

import (
	"sort"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

// Asset categories used by allocations
const (
	MoneyMarket = "money_market"
	Bonds       = "bonds"
	Sacco       = "sacco"
	Equities    = "equities"
	MutualFunds = "mutual_funds"
	RealEstate  = "real_estate"
	Crypto      = "crypto"
)

// Categories lists asset categories in their canonical order
var Categories = []string{MoneyMarket, Bonds, Sacco, Equities, MutualFunds, RealEstate, Crypto}

// RiskBracket is the five-step bucket used to pick a base allocation
type RiskBracket string

const (
	BracketVeryLow  RiskBracket = "very_low"
	BracketLow      RiskBracket = "low"
	BracketMedium   RiskBracket = "medium"
	BracketHigh     RiskBracket = "high"
	BracketVeryHigh RiskBracket = "very_high"
)

var brackets = []RiskBracket{BracketVeryLow, BracketLow, BracketMedium, BracketHigh, BracketVeryHigh}

// BracketForScore maps a 0-100 risk score to a bracket
func BracketForScore(score float64) RiskBracket {
	switch {
	case score < 20:
		return BracketVeryLow
	case score < 40:
		return BracketLow
	case score < 60:
		return BracketMedium
	case score < 80:
		return BracketHigh
	default:
		return BracketVeryHigh
	}
}

// Level returns the bracket as a 1-5 ordinal
func (b RiskBracket) Level() int {
	for i, rb := range brackets {
		if rb == b {
			return i + 1
		}
	}
	return 3
}

// baseAllocations are the starting weights per bracket; each row sums to 1
var baseAllocations = map[RiskBracket]Allocation{
	BracketVeryLow:  {MoneyMarket: 0.40, Bonds: 0.30, Sacco: 0.20, Equities: 0.05, MutualFunds: 0.05, RealEstate: 0, Crypto: 0},
	BracketLow:      {MoneyMarket: 0.30, Bonds: 0.30, Sacco: 0.15, Equities: 0.10, MutualFunds: 0.10, RealEstate: 0.05, Crypto: 0},
	BracketMedium:   {MoneyMarket: 0.15, Bonds: 0.20, Sacco: 0.10, Equities: 0.25, MutualFunds: 0.20, RealEstate: 0.10, Crypto: 0},
	BracketHigh:     {MoneyMarket: 0.10, Bonds: 0.10, Sacco: 0.05, Equities: 0.40, MutualFunds: 0.20, RealEstate: 0.10, Crypto: 0.05},
	BracketVeryHigh: {MoneyMarket: 0.05, Bonds: 0.05, Sacco: 0.05, Equities: 0.50, MutualFunds: 0.15, RealEstate: 0.10, Crypto: 0.10},
}

// BaseAllocation returns a fresh copy of the bracket's base weights
func BaseAllocation(b RiskBracket) Allocation {
	return baseAllocations[b].Clone()
}

// Allocation maps asset categories to weights. Normalized allocations sum to 1.
type Allocation map[string]float64

// Clone returns an independent copy
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Sum returns the total weight
func (a Allocation) Sum() float64 {
	total := 0.0
	for _, v := range a {
		total += v
	}
	return total
}

// Normalize rescales weights to sum to 1. Negative weights are floored at 0
// first. An all-zero allocation is returned unchanged.
func (a Allocation) Normalize() Allocation {
	for k, v := range a {
		if v < 0 {
			a[k] = 0
		}
	}
	total := a.Sum()
	if total <= 0 {
		return a
	}
	for k, v := range a {
		a[k] = v / total
	}
	return a
}

// Adjust adds amount to category to and removes up to the same amount from
// category from, never taking it below zero, then renormalizes.
func (a Allocation) Adjust(to, from string, amount float64) Allocation {
	a[to] += amount
	a[from] = max(0, a[from]-amount)
	return a.Normalize()
}

// Shift moves up to amount from one category to another, preserving the total
// before renormalizing.
func (a Allocation) Shift(from, to string, amount float64) Allocation {
	moved := min(amount, a[from])
	a[from] -= moved
	a[to] += moved
	return a.Normalize()
}

// Ranked returns the non-zero categories ordered by weight, largest first.
// Ties follow the canonical category order.
func (a Allocation) Ranked() []string {
	ranked := make([]string, 0, len(a))
	for _, c := range Categories {
		if a[c] > 0 {
			ranked = append(ranked, c)
		}
	}
	for _, c := range domain.SortedKeys(a) {
		if a[c] > 0 && !isCategory(c) {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return a[ranked[i]] > a[ranked[j]] })
	return ranked
}

func isCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}
