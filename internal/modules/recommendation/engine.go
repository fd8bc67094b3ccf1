package recommendation

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/pkg/formulas"
)

// DefaultTopN is the number of products listed per category
const DefaultTopN = 2

// Recommendation is one allocation category with its suggested products
type Recommendation struct {
	Category               string                  `json:"category"`
	Name                   string                  `json:"name"`
	AllocationPercentage   float64                 `json:"allocation_percentage"`
	Amount                 float64                 `json:"amount"`
	RiskLevel              string                  `json:"risk_level"`
	ExpectedReturns        float64                 `json:"expected_returns"`
	TimeHorizon            string                  `json:"time_horizon"`
	SpecificProducts       []ProductRecommendation `json:"specific_products"`
	RecommendationStrength float64                 `json:"recommendation_strength"`
}

// Result is the full output of one recommendation run. Nothing in it is
// persisted; every call regenerates it.
type Result struct {
	UserID            string           `json:"user_id"`
	Strategy          string           `json:"strategy"`
	RiskBracket       RiskBracket      `json:"risk_bracket"`
	Allocation        Allocation       `json:"allocation"`
	Recommendations   []Recommendation `json:"recommendations"`
	Summary           ReturnSummary    `json:"summary"`
	Rationale         Rationale        `json:"rationale"`
	TimeHorizon       string           `json:"time_horizon"`
	MarketAdjustments []string         `json:"market_adjustments"`
	GeneratedAt       time.Time        `json:"generated_at"`
}

// Engine generates personalized allocations and product picks.
// The allocation strategy is fixed at construction; if it fails for a user the
// rule-based strategy is used for that call.
type Engine struct {
	strategy AllocationStrategy
	fallback AllocationStrategy
	products []Product
	topN     int
	log      zerolog.Logger
	now      func() time.Time
}

// NewEngine creates an engine over the default product shelf
func NewEngine(strategy AllocationStrategy, log zerolog.Logger) *Engine {
	if strategy == nil {
		strategy = NewRuleBasedStrategy(log)
	}
	return &Engine{
		strategy: strategy,
		fallback: NewRuleBasedStrategy(log),
		products: DefaultProducts,
		topN:     DefaultTopN,
		log:      log.With().Str("component", "recommendation_engine").Logger(),
		now:      time.Now,
	}
}

// Strategy returns the name of the active allocation strategy
func (e *Engine) Strategy() string {
	return e.strategy.Name()
}

// GenerateRecommendations builds the allocation, product picks and rationale
// for a user under the given market snapshot.
func (e *Engine) GenerateRecommendations(profile domain.UserFinancialProfile, snapshot domain.MarketSnapshot) (Result, error) {
	if err := domain.Validate(profile); err != nil {
		return Result{}, fmt.Errorf("invalid financial profile: %w", err)
	}

	strategy := e.strategy
	alloc, err := strategy.Allocate(profile)
	if err != nil {
		if strategy.Name() == e.fallback.Name() {
			return Result{}, fmt.Errorf("allocation failed: %w", err)
		}
		e.log.Warn().Err(err).Str("user_id", profile.UserID).Msg("Allocation strategy failed, using rule-based fallback")
		strategy = e.fallback
		if alloc, err = strategy.Allocate(profile); err != nil {
			return Result{}, fmt.Errorf("allocation failed: %w", err)
		}
	}

	notes := AdjustForMarket(alloc, snapshot)
	if notes == nil {
		notes = []string{}
	}

	investment := profile.AvailableFunds
	if investment <= 0 {
		investment = profile.Savings
	}

	bracket := BracketForScore(profile.RiskPreferences.RiskScore)
	horizon := profile.RiskPreferences.InvestmentHorizon
	if horizon == "" {
		horizon = domain.HorizonMedium
	}

	recs := make([]Recommendation, 0, len(alloc))
	for _, category := range alloc.Ranked() {
		weight := alloc[category]
		amount := formulas.Round(investment*weight, 2)
		products := SelectProducts(e.products, category, e.topN, bracket.Level(), profile.FinancialGoals, horizon.Years(), amount)

		strength := 0.0
		if len(products) > 0 {
			strength = products[0].Strength
		}
		cp := categoryProfiles[category]

		recs = append(recs, Recommendation{
			Category:               category,
			Name:                   categoryLabel(category),
			AllocationPercentage:   formulas.Round(weight*100, 2),
			Amount:                 amount,
			RiskLevel:              cp.RiskLevel,
			ExpectedReturns:        cp.Return,
			TimeHorizon:            horizon.Label(),
			SpecificProducts:       products,
			RecommendationStrength: formulas.Clamp(strength, 0, 10),
		})
	}

	summary := SummarizeReturns(alloc, investment)

	result := Result{
		UserID:            profile.UserID,
		Strategy:          strategy.Name(),
		RiskBracket:       bracket,
		Allocation:        alloc,
		Recommendations:   recs,
		Summary:           summary,
		Rationale:         BuildRationale(profile, alloc, summary),
		TimeHorizon:       horizon.Label(),
		MarketAdjustments: notes,
		GeneratedAt:       e.now(),
	}

	e.log.Info().
		Str("user_id", profile.UserID).
		Str("strategy", result.Strategy).
		Str("bracket", string(bracket)).
		Int("categories", len(recs)).
		Float64("expected_return", summary.ExpectedReturn).
		Msg("Generated recommendations")

	return result, nil
}
