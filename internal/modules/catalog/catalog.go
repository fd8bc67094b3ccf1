// Package catalog provides the investment risk catalog and the market
// condition service that scales its risk readings.
package catalog

import (
	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

// Catalog serves investment risk entries adjusted for the current market condition.
// Stored rows are never mutated.
type Catalog struct {
	entries    map[string]Entry
	types      []string
	conditions *MarketConditions
	log        zerolog.Logger
}

// New creates a catalog over DefaultEntries
func New(conditions *MarketConditions, log zerolog.Logger) *Catalog {
	return NewWithEntries(DefaultEntries, conditions, log)
}

// NewWithEntries creates a catalog over a custom entry table
func NewWithEntries(entries []Entry, conditions *MarketConditions, log zerolog.Logger) *Catalog {
	byType := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byType[e.InvestmentType] = e
	}
	if conditions == nil {
		conditions = NewMarketConditions(log)
	}
	return &Catalog{
		entries:    byType,
		types:      domain.SortedKeys(byType),
		conditions: conditions,
		log:        log.With().Str("component", "risk_catalog").Logger(),
	}
}

// Conditions returns the market condition service backing this catalog
func (c *Catalog) Conditions() *MarketConditions {
	return c.conditions
}

// Types returns all known investment types in sorted order
func (c *Catalog) Types() []string {
	return append([]string(nil), c.types...)
}

// Has reports whether the investment type is in the catalog
func (c *Catalog) Has(investmentType string) bool {
	_, ok := c.entries[investmentType]
	return ok
}

// GetInvestmentRisk returns the market-adjusted entry for an investment type
func (c *Catalog) GetInvestmentRisk(investmentType string) (Entry, error) {
	return c.View().Get(investmentType)
}

// UpdateMarketConditions switches the process-wide market condition
func (c *Catalog) UpdateMarketConditions(condition string) error {
	return c.conditions.Update(condition)
}

// View pins the current market factor so one computation reads every entry
// under the same condition.
func (c *Catalog) View() View {
	condition := c.conditions.Current()
	return View{catalog: c, condition: condition, factor: condition.Factor()}
}

// View is a read-only catalog snapshot under a fixed market condition
type View struct {
	catalog   *Catalog
	condition domain.MarketCondition
	factor    float64
}

// Condition returns the market condition the view was taken under
func (v View) Condition() domain.MarketCondition {
	return v.condition
}

// Get returns the adjusted entry or an UnknownInvestmentTypeError
func (v View) Get(investmentType string) (Entry, error) {
	e, ok := v.catalog.entries[investmentType]
	if !ok {
		return Entry{}, &domain.UnknownInvestmentTypeError{
			InvestmentType: investmentType,
			Known:          v.catalog.Types(),
		}
	}
	e.RiskScore *= v.factor
	e.Volatility *= v.factor
	return e, nil
}
