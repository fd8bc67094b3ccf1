package riskprofile

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

// Store persists versioned risk profiles. SaveRiskProfile assigns the ID and
// version and supersedes the previous current version.
type Store interface {
	SaveRiskProfile(ctx context.Context, p domain.UserRiskProfile) (domain.UserRiskProfile, error)
	GetRiskProfile(ctx context.Context, userID string) (domain.UserRiskProfile, error)
}

// Service evaluates questionnaires and keeps user risk profiles current
type Service struct {
	calc  *Calculator
	store Store
	log   zerolog.Logger
}

// NewService creates a new risk profile service
func NewService(calc *Calculator, store Store, log zerolog.Logger) *Service {
	return &Service{
		calc:  calc,
		store: store,
		log:   log.With().Str("component", "risk_profile_service").Logger(),
	}
}

// SubmitQuestionnaire evaluates a questionnaire and stores the result as the
// user's current risk profile.
func (s *Service) SubmitQuestionnaire(ctx context.Context, userID string, responses map[string]int, attrs domain.RiskAttributes) (domain.UserRiskProfile, error) {
	p := domain.UserRiskProfile{
		UserID:                 userID,
		AgeGroup:               attrs.AgeGroup,
		IncomeLevel:            attrs.IncomeLevel,
		FinancialGoals:         attrs.FinancialGoals,
		InvestmentHorizon:      attrs.InvestmentHorizon,
		EmergencyFund:          attrs.EmergencyFund,
		Dependents:             attrs.Dependents,
		InvestmentExperience:   attrs.InvestmentExperience,
		QuestionnaireResponses: copyResponses(responses),
	}
	return s.evaluateAndSave(ctx, p)
}

// GetRiskProfile returns the current profile. Users who never submitted a
// questionnaire get an undefined profile rather than an error.
func (s *Service) GetRiskProfile(ctx context.Context, userID string) (domain.UserRiskProfile, error) {
	p, err := s.store.GetRiskProfile(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.UserRiskProfile{UserID: userID, RiskProfile: domain.RiskUndefined}, nil
	}
	if err != nil {
		return domain.UserRiskProfile{}, fmt.Errorf("failed to load risk profile for %s: %w", userID, err)
	}
	return p, nil
}

// UpdateProfile applies attribute changes and recalculates the profile.
// Unrecognized keys and values of the wrong type are ignored with a warning.
func (s *Service) UpdateProfile(ctx context.Context, userID string, updates map[string]any) (domain.UserRiskProfile, error) {
	p, err := s.GetRiskProfile(ctx, userID)
	if err != nil {
		return domain.UserRiskProfile{}, err
	}

	keys := domain.SortedKeys(updates)
	applied := 0
	for _, key := range keys {
		if s.apply(&p, key, updates[key]) {
			applied++
		}
	}

	s.log.Debug().Str("user_id", userID).Int("applied", applied).Int("requested", len(keys)).Msg("Applied profile updates")
	return s.evaluateAndSave(ctx, p)
}

func (s *Service) evaluateAndSave(ctx context.Context, p domain.UserRiskProfile) (domain.UserRiskProfile, error) {
	result := s.calc.Calculate(p.QuestionnaireResponses, p.Attributes())
	p.RiskToleranceScore = result.Score
	p.RiskProfile = result.Category
	p.LastUpdated = result.EvaluatedAt

	saved, err := s.store.SaveRiskProfile(ctx, p)
	if err != nil {
		return domain.UserRiskProfile{}, fmt.Errorf("failed to save risk profile for %s: %w", p.UserID, err)
	}

	s.log.Info().
		Str("user_id", saved.UserID).
		Int("version", saved.Version).
		Float64("score", saved.RiskToleranceScore).
		Str("category", string(saved.RiskProfile)).
		Msg("Risk profile evaluated")
	return saved, nil
}

func (s *Service) apply(p *domain.UserRiskProfile, key string, value any) bool {
	ok := true
	switch key {
	case "age_group":
		var v string
		if v, ok = value.(string); ok {
			p.AgeGroup = domain.AgeGroup(v)
		}
	case "income_level":
		var v string
		if v, ok = value.(string); ok {
			p.IncomeLevel = domain.IncomeLevel(v)
		}
	case "investment_horizon":
		var v string
		if v, ok = value.(string); ok {
			p.InvestmentHorizon = domain.InvestmentHorizon(v)
		}
	case "investment_experience":
		var v string
		if v, ok = value.(string); ok {
			p.InvestmentExperience = domain.ExperienceLevel(v)
		}
	case "emergency_fund":
		var v bool
		if v, ok = value.(bool); ok {
			p.EmergencyFund = v
		}
	case "dependents":
		var v int
		if v, ok = asInt(value); ok && v >= 0 {
			p.Dependents = v
		} else {
			ok = false
		}
	case "financial_goals":
		var v []string
		if v, ok = asStrings(value); ok {
			p.FinancialGoals = v
		}
	case "questionnaire_responses":
		var v map[string]int
		if v, ok = asResponses(value); ok {
			p.QuestionnaireResponses = v
		}
	default:
		s.log.Warn().Str("key", key).Msg("Ignoring unknown profile attribute")
		return false
	}

	if !ok {
		s.log.Warn().Str("key", key).Interface("value", value).Msg("Ignoring profile attribute with invalid value")
	}
	return ok
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

func asStrings(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func asResponses(value any) (map[string]int, bool) {
	switch v := value.(type) {
	case map[string]int:
		return copyResponses(v), true
	case map[string]any:
		out := make(map[string]int, len(v))
		for k, raw := range v {
			n, ok := asInt(raw)
			if !ok {
				return nil, false
			}
			out[k] = n
		}
		return out, true
	default:
		return nil, false
	}
}

func copyResponses(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
