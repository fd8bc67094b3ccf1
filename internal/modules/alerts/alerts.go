// Package alerts derives actionable risk warnings for a user from their
// profile, portfolio and the current market snapshot.
package alerts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/portfolio"
)

// Type identifies the rule that raised an alert
type Type string

const (
	TypeConcentration     Type = "concentration"
	TypeRiskMismatch      Type = "risk_mismatch"
	TypeHighDebt          Type = "high_debt"
	TypeMarketVolatility  Type = "market_volatility"
	TypeNegativeSentiment Type = "negative_sentiment"
	TypeInflation         Type = "inflation"
)

// Severity ranks alerts for display
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

const (
	concentrationLimit = 30.0 // percent of portfolio
	debtToIncomeLimit  = 0.45
	marketRiskLimit    = 70.0
	inflationLimitPct  = 7.0
)

// Alert is a single actionable warning
type Alert struct {
	ID          string   `json:"id"`
	Type        Type     `json:"type"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
}

// ProfileSource loads stored user data
type ProfileSource interface {
	GetFinancialProfile(ctx context.Context, userID string) (domain.UserFinancialProfile, error)
	GetPortfolio(ctx context.Context, userID string) (domain.Portfolio, error)
}

// RiskProfileSource returns the user's current risk profile, undefined when
// no questionnaire has been completed
type RiskProfileSource interface {
	GetRiskProfile(ctx context.Context, userID string) (domain.UserRiskProfile, error)
}

// Service evaluates alert rules. Alerts are recomputed on every call.
type Service struct {
	profiles ProfileSource
	risk     RiskProfileSource
	analyzer *portfolio.Analyzer
	market   domain.MarketDataProvider
	log      zerolog.Logger
	newID    func() string
}

// NewService creates an alert service
func NewService(
	profiles ProfileSource,
	risk RiskProfileSource,
	analyzer *portfolio.Analyzer,
	market domain.MarketDataProvider,
	log zerolog.Logger,
) *Service {
	return &Service{
		profiles: profiles,
		risk:     risk,
		analyzer: analyzer,
		market:   market,
		log:      log.With().Str("component", "alerts").Logger(),
		newID:    uuid.NewString,
	}
}

// GetRiskAlerts returns every alert that fires for the user, in rule order.
// Missing data skips the rules that need it rather than failing the call.
func (s *Service) GetRiskAlerts(ctx context.Context, userID string) ([]Alert, error) {
	var out []Alert
	add := func(a Alert) {
		a.ID = s.newID()
		out = append(out, a)
	}

	profile, err := s.profiles.GetFinancialProfile(ctx, userID)
	hasProfile, err := found(err)
	if err != nil {
		return nil, fmt.Errorf("failed to load financial profile: %w", err)
	}
	held, err := s.profiles.GetPortfolio(ctx, userID)
	hasPortfolio, err := found(err)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}
	riskProfile, err := s.risk.GetRiskProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load risk profile: %w", err)
	}
	if _, err := domain.ParseRiskCategory(string(riskProfile.RiskProfile)); err != nil {
		return nil, err
	}

	if hasPortfolio {
		for _, t := range held.Types() {
			if pct := held.Allocations[t]; pct > concentrationLimit {
				add(concentrationAlert(t, pct))
			}
		}

		if riskProfile.RiskProfile.IsDefined() {
			m, err := s.analyzer.CalculatePortfolioMetrics(ctx, held, portfolio.MetricsOptions{})
			if err != nil {
				s.log.Warn().Err(err).Str("user_id", userID).Msg("Stored portfolio failed analysis, skipping mismatch check")
			} else if m.RiskProfile != riskProfile.RiskProfile {
				add(mismatchAlert(m.RiskProfile, riskProfile.RiskProfile))
			}
		}
	}

	if hasProfile {
		if dti := profile.DebtToIncomeRatio(); dti > debtToIncomeLimit {
			add(debtAlert(dti))
		}
	}

	snapshot, err := s.market.CurrentSnapshot(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Market snapshot unavailable, skipping market alerts")
	} else {
		if score := snapshot.MarketRiskScore(); score > marketRiskLimit {
			add(volatilityAlert(score))
		}
		if snapshot.Sentiment == domain.SentimentNegative {
			add(sentimentAlert())
		}
		if snapshot.InflationRate > inflationLimitPct {
			add(inflationAlert(snapshot.InflationRate))
		}
	}

	s.log.Debug().Str("user_id", userID).Int("alerts", len(out)).Msg("Evaluated risk alerts")
	return out, nil
}

// found treats ErrNotFound as absent data rather than a failure
func found(err error) (bool, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func concentrationAlert(investmentType string, pct float64) Alert {
	return Alert{
		Type:        TypeConcentration,
		Severity:    SeverityMedium,
		Title:       "Concentration risk",
		Description: fmt.Sprintf("%.1f%% of your portfolio is in %s, above the %.0f%% guideline.", pct, investmentType, concentrationLimit),
		Action:      fmt.Sprintf("Rebalance part of your %s holding into other asset classes.", investmentType),
	}
}

func mismatchAlert(portfolioRisk, userRisk domain.RiskCategory) Alert {
	return Alert{
		Type:        TypeRiskMismatch,
		Severity:    SeverityMedium,
		Title:       "Portfolio does not match your risk profile",
		Description: fmt.Sprintf("Your portfolio is %s but your risk profile is %s.", portfolioRisk, userRisk),
		Action:      "Review the recommended allocation for your profile and rebalance gradually.",
	}
}

func debtAlert(dti float64) Alert {
	return Alert{
		Type:        TypeHighDebt,
		Severity:    SeverityHigh,
		Title:       "High debt load",
		Description: fmt.Sprintf("Your debt is %.0f%% of your income, above the %.0f%% guideline.", dti*100, debtToIncomeLimit*100),
		Action:      "Prioritise paying down high-interest loans before adding new investments.",
	}
}

func volatilityAlert(score float64) Alert {
	return Alert{
		Type:        TypeMarketVolatility,
		Severity:    SeverityMedium,
		Title:       "Elevated market volatility",
		Description: fmt.Sprintf("The aggregate market risk score is %.0f out of 100.", score),
		Action:      "Avoid large lump-sum equity purchases; consider spreading contributions over time.",
	}
}

func sentimentAlert() Alert {
	return Alert{
		Type:        TypeNegativeSentiment,
		Severity:    SeverityLow,
		Title:       "Negative market sentiment",
		Description: "Recent market news has been predominantly negative.",
		Action:      "Stay with your long-term plan and avoid reacting to short-term headlines.",
	}
}

func inflationAlert(rate float64) Alert {
	return Alert{
		Type:        TypeInflation,
		Severity:    SeverityMedium,
		Title:       "High inflation",
		Description: fmt.Sprintf("Inflation is running at %.1f%%, eroding the value of cash savings.", rate),
		Action:      "Check that your savings earn above inflation, for example through Treasury Bills or money market funds.",
	}
}
