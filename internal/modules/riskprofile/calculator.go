// Package riskprofile turns questionnaire answers and demographic attributes
// into a risk tolerance score and category.
package riskprofile

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

var ageModifiers = map[domain.AgeGroup]float64{
	domain.AgeGroup18To25: 5,
	domain.AgeGroup26To35: 3,
	domain.AgeGroup36To45: 1,
	domain.AgeGroup46To55: -1,
	domain.AgeGroup56To65: -3,
	domain.AgeGroup65Plus: -5,
}

var incomeModifiers = map[domain.IncomeLevel]float64{
	domain.IncomeLow:    -2,
	domain.IncomeMedium: 0,
	domain.IncomeHigh:   2,
}

var horizonModifiers = map[domain.InvestmentHorizon]float64{
	domain.HorizonShort:    -3,
	domain.HorizonMedium:   0,
	domain.HorizonLong:     2,
	domain.HorizonVeryLong: 4,
}

var experienceModifiers = map[domain.ExperienceLevel]float64{
	domain.ExperienceNone:        -2,
	domain.ExperienceNovice:      -1,
	domain.ExperienceExperienced: 1,
	domain.ExperienceAdvanced:    2,
}

const (
	noEmergencyFundPenalty = -3.0
	perDependentPenalty    = -1.0
)

// Result is the outcome of one risk evaluation
type Result struct {
	Score       float64             `json:"risk_tolerance_score"`
	Category    domain.RiskCategory `json:"risk_profile"`
	EvaluatedAt time.Time           `json:"evaluated_at"`
}

// Calculator computes risk tolerance scores. It holds no mutable state.
type Calculator struct {
	log zerolog.Logger
	now func() time.Time
}

// NewCalculator creates a calculator using the wall clock
func NewCalculator(log zerolog.Logger) *Calculator {
	return &Calculator{
		log: log.With().Str("component", "risk_calculator").Logger(),
		now: time.Now,
	}
}

// Calculate sums the questionnaire answers, applies the attribute modifiers,
// clamps to [0, 100] and maps the score to a category. An empty questionnaire
// yields the undefined category.
func (c *Calculator) Calculate(responses map[string]int, attrs domain.RiskAttributes) Result {
	now := c.now()
	if len(responses) == 0 {
		c.log.Warn().Msg("Empty questionnaire, risk profile is undefined")
		return Result{Category: domain.RiskUndefined, EvaluatedAt: now}
	}

	base := 0.0
	for _, answer := range responses {
		base += float64(answer)
	}

	score := formulas.Clamp(base+c.modifiers(attrs), 0, 100)

	return Result{
		Score:       score,
		Category:    domain.CategoryForScore(score),
		EvaluatedAt: now,
	}
}

func (c *Calculator) modifiers(attrs domain.RiskAttributes) float64 {
	total := 0.0
	total += lookup(c.log, "age_group", ageModifiers, attrs.AgeGroup)
	total += lookup(c.log, "income_level", incomeModifiers, attrs.IncomeLevel)
	total += lookup(c.log, "investment_horizon", horizonModifiers, attrs.InvestmentHorizon)
	total += lookup(c.log, "investment_experience", experienceModifiers, attrs.InvestmentExperience)

	if !attrs.EmergencyFund {
		total += noEmergencyFundPenalty
	}
	if attrs.Dependents > 0 {
		total += perDependentPenalty * float64(attrs.Dependents)
	}
	return total
}

// lookup returns the modifier for a value. Missing values contribute nothing;
// unrecognized ones also contribute nothing but are logged.
func lookup[K ~string](log zerolog.Logger, field string, table map[K]float64, value K) float64 {
	if value == "" {
		return 0
	}
	m, ok := table[value]
	if !ok {
		log.Warn().Str("field", field).Str("value", string(value)).Msg("Unrecognized attribute value, no modifier applied")
		return 0
	}
	return m
}
