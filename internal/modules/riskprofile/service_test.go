package riskprofile

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

type fakeStore struct {
	history map[string][]domain.UserRiskProfile
}

func newFakeStore() *fakeStore {
	return &fakeStore{history: make(map[string][]domain.UserRiskProfile)}
}

func (f *fakeStore) SaveRiskProfile(_ context.Context, p domain.UserRiskProfile) (domain.UserRiskProfile, error) {
	p.Version = len(f.history[p.UserID]) + 1
	p.ID = fmt.Sprintf("%s-v%d", p.UserID, p.Version)
	f.history[p.UserID] = append(f.history[p.UserID], p)
	return p, nil
}

func (f *fakeStore) GetRiskProfile(_ context.Context, userID string) (domain.UserRiskProfile, error) {
	versions := f.history[userID]
	if len(versions) == 0 {
		return domain.UserRiskProfile{}, domain.ErrNotFound
	}
	return versions[len(versions)-1], nil
}

func newTestService() (*Service, *fakeStore) {
	store := newFakeStore()
	return NewService(newTestCalculator(), store, zerolog.Nop()), store
}

func TestService_SubmitQuestionnaire(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	p, err := svc.SubmitQuestionnaire(ctx, "u1", sampleResponses(), domain.RiskAttributes{
		AgeGroup:             domain.AgeGroup26To35,
		InvestmentHorizon:    domain.HorizonMedium,
		EmergencyFund:        true,
		Dependents:           1,
		InvestmentExperience: domain.ExperienceNovice,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, p.Version)
	assert.Equal(t, 18.0, p.RiskToleranceScore)
	assert.Equal(t, domain.RiskConservative, p.RiskProfile)
	assert.Equal(t, fixedNow, p.LastUpdated)
	assert.Len(t, store.history["u1"], 1)
}

func TestService_GetRiskProfile_UndefinedBeforeQuestionnaire(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.GetRiskProfile(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, domain.RiskUndefined, p.RiskProfile)
	assert.Equal(t, "nobody", p.UserID)
}

func TestService_UpdateProfile_RecalculatesAndSupersedes(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.SubmitQuestionnaire(ctx, "u1", map[string]int{"q1": 30}, domain.RiskAttributes{EmergencyFund: true})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, "u1", map[string]any{
		"age_group":          "18-25",
		"investment_horizon": "long",
		"dependents":         float64(2),
		"favourite_colour":   "green",
		"emergency_fund":     "yes",
	})
	require.NoError(t, err, "unknown keys and bad values must not fail the update")

	// 30 + 5 (age) + 2 (long horizon) - 2 (dependents); emergency fund unchanged
	assert.Equal(t, 35.0, updated.RiskToleranceScore)
	assert.Equal(t, domain.RiskModerate, updated.RiskProfile)
	assert.True(t, updated.EmergencyFund)
	assert.Equal(t, 2, updated.Version)
	assert.Len(t, store.history["u1"], 2, "previous version is kept")
}

func TestService_UpdateProfile_QuestionnaireFromJSON(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.UpdateProfile(context.Background(), "u2", map[string]any{
		"questionnaire_responses": map[string]any{"q1": float64(20), "q2": float64(15)},
		"emergency_fund":          true,
		"financial_goals":         []any{"retirement", "education"},
	})
	require.NoError(t, err)

	assert.Equal(t, 35.0, p.RiskToleranceScore)
	assert.Equal(t, []string{"retirement", "education"}, p.FinancialGoals)
	assert.Equal(t, 1, p.Version)
}
