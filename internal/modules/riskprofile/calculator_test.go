package riskprofile

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

var fixedNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestCalculator() *Calculator {
	c := NewCalculator(zerolog.Nop())
	c.now = func() time.Time { return fixedNow }
	return c
}

func sampleResponses() map[string]int {
	return map[string]int{"q1": 3, "q2": 4, "q3": 3, "q4": 4, "q5": 3}
}

func TestCalculate_WorkedExample(t *testing.T) {
	c := newTestCalculator()

	result := c.Calculate(sampleResponses(), domain.RiskAttributes{
		AgeGroup:             domain.AgeGroup26To35,
		InvestmentHorizon:    domain.HorizonMedium,
		EmergencyFund:        true,
		Dependents:           1,
		InvestmentExperience: domain.ExperienceNovice,
	})

	assert.Equal(t, 18.0, result.Score)
	assert.Equal(t, domain.RiskConservative, result.Category)
	assert.Equal(t, fixedNow, result.EvaluatedAt)
}

func TestCalculate_Modifiers(t *testing.T) {
	base := domain.RiskAttributes{EmergencyFund: true}

	tests := []struct {
		name   string
		mutate func(a *domain.RiskAttributes)
		delta  float64
	}{
		{"young", func(a *domain.RiskAttributes) { a.AgeGroup = domain.AgeGroup18To25 }, 5},
		{"retired", func(a *domain.RiskAttributes) { a.AgeGroup = domain.AgeGroup65Plus }, -5},
		{"high income", func(a *domain.RiskAttributes) { a.IncomeLevel = domain.IncomeHigh }, 2},
		{"low income", func(a *domain.RiskAttributes) { a.IncomeLevel = domain.IncomeLow }, -2},
		{"short horizon", func(a *domain.RiskAttributes) { a.InvestmentHorizon = domain.HorizonShort }, -3},
		{"very long horizon", func(a *domain.RiskAttributes) { a.InvestmentHorizon = domain.HorizonVeryLong }, 4},
		{"no emergency fund", func(a *domain.RiskAttributes) { a.EmergencyFund = false }, -3},
		{"three dependents", func(a *domain.RiskAttributes) { a.Dependents = 3 }, -3},
		{"advanced investor", func(a *domain.RiskAttributes) { a.InvestmentExperience = domain.ExperienceAdvanced }, 2},
		{"unknown experience", func(a *domain.RiskAttributes) { a.InvestmentExperience = "guru" }, 0},
	}

	c := newTestCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := base
			tt.mutate(&attrs)
			result := c.Calculate(map[string]int{"q1": 40}, attrs)
			assert.Equal(t, 40+tt.delta, result.Score)
		})
	}
}

func TestCalculate_Clamps(t *testing.T) {
	c := newTestCalculator()

	low := c.Calculate(map[string]int{"q1": 1}, domain.RiskAttributes{
		AgeGroup:   domain.AgeGroup65Plus,
		Dependents: 12,
	})
	assert.Equal(t, 0.0, low.Score)
	assert.Equal(t, domain.RiskConservative, low.Category)

	high := c.Calculate(map[string]int{"q1": 60, "q2": 60}, domain.RiskAttributes{
		AgeGroup:      domain.AgeGroup18To25,
		EmergencyFund: true,
	})
	assert.Equal(t, 100.0, high.Score)
	assert.Equal(t, domain.RiskVeryAggressive, high.Category)
}

func TestCalculate_EmptyQuestionnaireIsUndefined(t *testing.T) {
	c := newTestCalculator()

	result := c.Calculate(nil, domain.RiskAttributes{AgeGroup: domain.AgeGroup18To25})
	assert.Equal(t, domain.RiskUndefined, result.Category)
	assert.Equal(t, 0.0, result.Score)

	zero := c.Calculate(map[string]int{"q1": 0}, domain.RiskAttributes{EmergencyFund: true})
	assert.Equal(t, domain.RiskConservative, zero.Category, "a real zero score is not undefined")
}

func TestCalculate_AgeMonotonicity(t *testing.T) {
	c := newTestCalculator()
	groups := []domain.AgeGroup{
		domain.AgeGroup65Plus, domain.AgeGroup56To65, domain.AgeGroup46To55,
		domain.AgeGroup36To45, domain.AgeGroup26To35, domain.AgeGroup18To25,
	}

	for _, answers := range []int{10, 22, 24, 48, 72} {
		prev := -1
		for _, g := range groups {
			result := c.Calculate(map[string]int{"q1": answers}, domain.RiskAttributes{AgeGroup: g, EmergencyFund: true})
			idx, ok := result.Category.Index()
			assert.True(t, ok)
			assert.GreaterOrEqual(t, idx, prev, "younger bracket must not lower the category (answers=%d, group=%s)", answers, g)
			prev = idx
		}
	}
}

func TestCalculate_AttributeMonotonicity(t *testing.T) {
	tests := []struct {
		name  string
		steps []domain.RiskAttributes
	}{
		{
			name: "investment horizon",
			steps: []domain.RiskAttributes{
				{InvestmentHorizon: domain.HorizonShort},
				{InvestmentHorizon: domain.HorizonMedium},
				{InvestmentHorizon: domain.HorizonLong},
				{InvestmentHorizon: domain.HorizonVeryLong},
			},
		},
		{
			name: "investment experience",
			steps: []domain.RiskAttributes{
				{InvestmentExperience: domain.ExperienceNone},
				{InvestmentExperience: domain.ExperienceNovice},
				{InvestmentExperience: domain.ExperienceExperienced},
				{InvestmentExperience: domain.ExperienceAdvanced},
			},
		},
	}

	c := newTestCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, answers := range []int{10, 22, 24, 48, 72} {
				prevScore, prevIdx := -1.0, -1
				for _, attrs := range tt.steps {
					attrs.AgeGroup = domain.AgeGroup36To45
					attrs.EmergencyFund = true

					result := c.Calculate(map[string]int{"q1": answers}, attrs)
					idx, ok := result.Category.Index()
					require.True(t, ok)
					assert.GreaterOrEqual(t, result.Score, prevScore, "answers=%d attrs=%+v", answers, attrs)
					assert.GreaterOrEqual(t, idx, prevIdx, "answers=%d attrs=%+v", answers, attrs)
					prevScore, prevIdx = result.Score, idx
				}
			}
		})
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	c := newTestCalculator()
	attrs := domain.RiskAttributes{AgeGroup: domain.AgeGroup36To45, IncomeLevel: domain.IncomeHigh, Dependents: 2}

	first := c.Calculate(sampleResponses(), attrs)
	second := c.Calculate(sampleResponses(), attrs)
	assert.Equal(t, first, second)
}
