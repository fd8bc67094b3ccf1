// Package domain provides core domain models and types shared by the risk and
// recommendation modules.
package domain

import (
	"sort"
	"time"
)

// AgeGroup is the questionnaire age bracket
type AgeGroup string

const (
	AgeGroup18To25 AgeGroup = "18-25"
	AgeGroup26To35 AgeGroup = "26-35"
	AgeGroup36To45 AgeGroup = "36-45"
	AgeGroup46To55 AgeGroup = "46-55"
	AgeGroup56To65 AgeGroup = "56-65"
	AgeGroup65Plus AgeGroup = "65+"
)

// AgeGroupForAge buckets an age in years into its questionnaire bracket.
// Ages under 18 share the youngest bracket.
func AgeGroupForAge(age int) AgeGroup {
	switch {
	case age <= 25:
		return AgeGroup18To25
	case age <= 35:
		return AgeGroup26To35
	case age <= 45:
		return AgeGroup36To45
	case age <= 55:
		return AgeGroup46To55
	case age <= 65:
		return AgeGroup56To65
	default:
		return AgeGroup65Plus
	}
}

// IncomeLevel represents a coarse income band
type IncomeLevel string

const (
	IncomeLow    IncomeLevel = "low"
	IncomeMedium IncomeLevel = "medium"
	IncomeHigh   IncomeLevel = "high"
)

// Monthly income thresholds (KES) used to derive an IncomeLevel
const (
	LowIncomeCeiling  = 50_000.0
	HighIncomeFloor   = 200_000.0
	incomeBracketStep = 50_000.0
)

// IncomeLevelFor maps a monthly income in KES to an income band
func IncomeLevelFor(monthlyIncome float64) IncomeLevel {
	switch {
	case monthlyIncome < LowIncomeCeiling:
		return IncomeLow
	case monthlyIncome >= HighIncomeFloor:
		return IncomeHigh
	default:
		return IncomeMedium
	}
}

// IncomeBracket maps a monthly income to a 1-5 ordinal bracket
func IncomeBracket(monthlyIncome float64) int {
	bracket := int(monthlyIncome/incomeBracketStep) + 1
	if bracket < 1 {
		return 1
	}
	if bracket > 5 {
		return 5
	}
	return bracket
}

// InvestmentHorizon represents how long the user intends to stay invested
type InvestmentHorizon string

const (
	HorizonShort    InvestmentHorizon = "short"
	HorizonMedium   InvestmentHorizon = "medium"
	HorizonLong     InvestmentHorizon = "long"
	HorizonVeryLong InvestmentHorizon = "very_long"
)

// Years returns the representative holding period for the horizon
func (h InvestmentHorizon) Years() float64 {
	switch h {
	case HorizonShort:
		return 1
	case HorizonLong:
		return 7
	case HorizonVeryLong:
		return 15
	default:
		return 3
	}
}

// Label returns the human readable time horizon
func (h InvestmentHorizon) Label() string {
	switch h {
	case HorizonShort:
		return "short-term (under 2 years)"
	case HorizonLong:
		return "long-term (5-10 years)"
	case HorizonVeryLong:
		return "very long-term (10+ years)"
	default:
		return "medium-term (2-5 years)"
	}
}

// ExperienceLevel is the self-reported investment experience
type ExperienceLevel string

const (
	ExperienceNone        ExperienceLevel = "none"
	ExperienceNovice      ExperienceLevel = "novice"
	ExperienceExperienced ExperienceLevel = "experienced"
	ExperienceAdvanced    ExperienceLevel = "advanced"
)

// Liquidity is the liquidity tier of an asset class
type Liquidity string

const (
	LiquidityHigh   Liquidity = "high"
	LiquidityMedium Liquidity = "medium"
	LiquidityLow    Liquidity = "low"
)

// Known financial goals
const (
	GoalRetirement = "retirement"
	GoalEducation  = "education"
	GoalHome       = "home"
	GoalBusiness   = "business"
	GoalEmergency  = "emergency"
	GoalWealth     = "wealth"
)

// KnownGoals is the ordered goal vocabulary used for one-hot features
var KnownGoals = []string{GoalRetirement, GoalEducation, GoalHome, GoalBusiness, GoalEmergency, GoalWealth}

// RiskPreferences holds the user's stated risk preferences
type RiskPreferences struct {
	RiskScore         float64           `json:"risk_score" validate:"gte=0,lte=100"`
	InvestmentHorizon InvestmentHorizon `json:"investment_horizon" validate:"omitempty,oneof=short medium long very_long"`
	LossTolerance     float64           `json:"loss_tolerance" validate:"gte=0,lte=100"` // max acceptable drawdown, percent
}

// UserFinancialProfile is the user profile supplied by the profile collaborator.
// Monetary fields are monthly KES amounts except Savings, Debt and AvailableFunds.
type UserFinancialProfile struct {
	UserID               string          `json:"user_id" validate:"required"`
	Age                  int             `json:"age" validate:"gte=0,lte=120"`
	Income               float64         `json:"income" validate:"gte=0"`
	Savings              float64         `json:"savings" validate:"gte=0"`
	Debt                 float64         `json:"debt" validate:"gte=0"`
	Dependents           int             `json:"dependents" validate:"gte=0"`
	FinancialLiteracy    int             `json:"financial_literacy" validate:"gte=0,lte=10"`
	InvestmentExperience ExperienceLevel `json:"investment_experience" validate:"omitempty,oneof=none novice experienced advanced"`
	FinancialGoals       []string        `json:"financial_goals"`
	Location             string          `json:"location"`
	AvailableFunds       float64         `json:"available_funds" validate:"gte=0"`
	EmergencyFund        bool            `json:"emergency_fund"`
	RiskPreferences      RiskPreferences `json:"risk_preferences"`
}

// DebtToIncomeRatio returns debt over annual income, 0 when income is unknown
func (p UserFinancialProfile) DebtToIncomeRatio() float64 {
	if p.Income <= 0 {
		return 0
	}
	return p.Debt / (p.Income * 12)
}

// HasGoal reports whether the user listed the given goal
func (p UserFinancialProfile) HasGoal(goal string) bool {
	for _, g := range p.FinancialGoals {
		if g == goal {
			return true
		}
	}
	return false
}

// RiskAttributes are the demographic and financial modifiers applied on top of
// the questionnaire sum.
type RiskAttributes struct {
	AgeGroup             AgeGroup          `json:"age_group"`
	IncomeLevel          IncomeLevel       `json:"income_level"`
	InvestmentHorizon    InvestmentHorizon `json:"investment_horizon"`
	EmergencyFund        bool              `json:"emergency_fund"`
	Dependents           int               `json:"dependents"`
	InvestmentExperience ExperienceLevel   `json:"investment_experience"`
	FinancialGoals       []string          `json:"financial_goals"`
}

// AttributesFromProfile derives risk attributes from a financial profile
func AttributesFromProfile(p UserFinancialProfile) RiskAttributes {
	horizon := p.RiskPreferences.InvestmentHorizon
	if horizon == "" {
		horizon = HorizonMedium
	}
	return RiskAttributes{
		AgeGroup:             AgeGroupForAge(p.Age),
		IncomeLevel:          IncomeLevelFor(p.Income),
		InvestmentHorizon:    horizon,
		EmergencyFund:        p.EmergencyFund,
		Dependents:           p.Dependents,
		InvestmentExperience: p.InvestmentExperience,
		FinancialGoals:       append([]string(nil), p.FinancialGoals...),
	}
}

// UserRiskProfile is the outcome of a risk questionnaire evaluation
type UserRiskProfile struct {
	ID                     string            `json:"id"`
	UserID                 string            `json:"user_id"`
	Version                int               `json:"version"`
	RiskToleranceScore     float64           `json:"risk_tolerance_score"`
	RiskProfile            RiskCategory      `json:"risk_profile"`
	AgeGroup               AgeGroup          `json:"age_group"`
	IncomeLevel            IncomeLevel       `json:"income_level"`
	FinancialGoals         []string          `json:"financial_goals"`
	InvestmentHorizon      InvestmentHorizon `json:"investment_horizon"`
	EmergencyFund          bool              `json:"emergency_fund"`
	Dependents             int               `json:"dependents"`
	InvestmentExperience   ExperienceLevel   `json:"investment_experience"`
	QuestionnaireResponses map[string]int    `json:"questionnaire_responses"`
	LastUpdated            time.Time         `json:"last_updated"`
}

// Attributes returns the modifier attributes stored on the profile
func (p UserRiskProfile) Attributes() RiskAttributes {
	return RiskAttributes{
		AgeGroup:             p.AgeGroup,
		IncomeLevel:          p.IncomeLevel,
		InvestmentHorizon:    p.InvestmentHorizon,
		EmergencyFund:        p.EmergencyFund,
		Dependents:           p.Dependents,
		InvestmentExperience: p.InvestmentExperience,
		FinancialGoals:       append([]string(nil), p.FinancialGoals...),
	}
}

// SortedKeys returns map keys in ascending order
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
