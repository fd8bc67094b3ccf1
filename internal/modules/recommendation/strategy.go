package recommendation

import (
	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

// AllocationStrategy produces a normalized allocation for a user
type AllocationStrategy interface {
	Name() string
	Allocate(profile domain.UserFinancialProfile) (Allocation, error)
}

// goalAdjustment moves weight towards the category that serves a goal
type goalAdjustment struct {
	to, from string
	amount   float64
}

var goalAdjustments = map[string]goalAdjustment{
	domain.GoalRetirement: {to: Bonds, from: Equities, amount: 0.05},
	domain.GoalEducation:  {to: MutualFunds, from: MoneyMarket, amount: 0.05},
	domain.GoalBusiness:   {to: MoneyMarket, from: RealEstate, amount: 0.05},
	domain.GoalHome:       {to: RealEstate, from: Equities, amount: 0.05},
	domain.GoalEmergency:  {to: MoneyMarket, from: Crypto, amount: 0.05},
}

const (
	youngInvestorAge   = 30
	matureInvestorAge  = 50
	ageAdjustmentShare = 0.05
)

// RuleBasedStrategy picks a base allocation by risk bracket and adjusts it
// for goals and age. It needs no trained model and is always available.
type RuleBasedStrategy struct {
	log zerolog.Logger
}

// NewRuleBasedStrategy creates the rule-based strategy
func NewRuleBasedStrategy(log zerolog.Logger) *RuleBasedStrategy {
	return &RuleBasedStrategy{log: log.With().Str("component", "rule_based_strategy").Logger()}
}

func (s *RuleBasedStrategy) Name() string { return "rule_based" }

// Allocate returns the bracket base allocation after goal and age adjustments.
// The allocation is renormalized after every adjustment.
func (s *RuleBasedStrategy) Allocate(profile domain.UserFinancialProfile) (Allocation, error) {
	bracket := BracketForScore(profile.RiskPreferences.RiskScore)
	alloc := BaseAllocation(bracket)

	AdjustForGoals(alloc, profile.FinancialGoals)
	AdjustForAge(alloc, profile.Age)

	s.log.Debug().
		Str("user_id", profile.UserID).
		Str("bracket", string(bracket)).
		Msg("Built rule-based allocation")
	return alloc, nil
}

// AdjustForGoals applies each recognized goal once. Unknown goals are ignored.
func AdjustForGoals(alloc Allocation, goals []string) Allocation {
	seen := make(map[string]bool, len(goals))
	for _, g := range goals {
		adj, ok := goalAdjustments[g]
		if !ok || seen[g] {
			continue
		}
		seen[g] = true
		alloc.Adjust(adj.to, adj.from, adj.amount)
	}
	return alloc
}

// AdjustForAge tilts younger investors to equities and older ones to bonds
func AdjustForAge(alloc Allocation, age int) Allocation {
	switch {
	case age > 0 && age < youngInvestorAge:
		alloc.Adjust(Equities, Bonds, ageAdjustmentShare)
	case age > matureInvestorAge:
		alloc.Adjust(Bonds, Equities, ageAdjustmentShare)
	}
	return alloc
}
