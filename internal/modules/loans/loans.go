// Package loans compares the cost of Kenyan mobile and digital loans.
package loans

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// RateBasis is the period a provider's quoted rate applies to
type RateBasis string

const (
	// Daily rates accrue per day the loan is outstanding (Fuliza)
	Daily RateBasis = "daily"
	// Monthly rates are quoted per 30 days and prorated by term
	Monthly RateBasis = "monthly"
)

const daysPerMonth = 30

// Provider is a loan product and its quoted rate in percent
type Provider struct {
	Name  string          `json:"name"`
	Rate  decimal.Decimal `json:"rate"`
	Basis RateBasis       `json:"basis"`
}

// DefaultProviders are the common mobile lenders and their headline rates
var DefaultProviders = []Provider{
	{Name: "Fuliza", Rate: decimal.RequireFromString("1.083"), Basis: Daily},
	{Name: "M-Shwari", Rate: decimal.RequireFromString("7.5"), Basis: Monthly},
	{Name: "KCB M-Pesa", Rate: decimal.RequireFromString("8.64"), Basis: Monthly},
	{Name: "Tala", Rate: decimal.RequireFromString("15"), Basis: Monthly},
	{Name: "Branch", Rate: decimal.RequireFromString("17"), Basis: Monthly},
}

// Quote is the cost of one provider for the requested loan
type Quote struct {
	Provider       string          `json:"provider"`
	Basis          RateBasis       `json:"basis"`
	Rate           decimal.Decimal `json:"rate"`
	Interest       decimal.Decimal `json:"interest"`
	TotalRepayment decimal.Decimal `json:"total_repayment"`
}

// Interest returns the cost of borrowing amount for termDays, rounded to cents.
//
//	daily:   amount × rate/100 × days
//	monthly: amount × rate/100 × days/30
func (p Provider) Interest(amount decimal.Decimal, termDays int) (decimal.Decimal, error) {
	days := decimal.NewFromInt(int64(termDays))
	base := amount.Mul(p.Rate).Mul(days)

	switch p.Basis {
	case Daily:
		return base.Div(decimal.NewFromInt(100)).Round(2), nil
	case Monthly:
		return base.Div(decimal.NewFromInt(100 * daysPerMonth)).Round(2), nil
	default:
		return decimal.Zero, fmt.Errorf("provider %s has unknown rate basis %q", p.Name, p.Basis)
	}
}

// Compare quotes every provider for the loan, cheapest total repayment first.
// A nil provider list uses DefaultProviders.
func Compare(amount decimal.Decimal, termDays int, providers []Provider) ([]Quote, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("loan amount must be positive, got %s", amount)
	}
	if termDays <= 0 {
		return nil, fmt.Errorf("loan term must be at least one day, got %d", termDays)
	}
	if providers == nil {
		providers = DefaultProviders
	}

	quotes := make([]Quote, 0, len(providers))
	for _, p := range providers {
		interest, err := p.Interest(amount, termDays)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, Quote{
			Provider:       p.Name,
			Basis:          p.Basis,
			Rate:           p.Rate,
			Interest:       interest,
			TotalRepayment: amount.Add(interest),
		})
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].TotalRepayment.LessThan(quotes[j].TotalRepayment)
	})
	return quotes, nil
}
