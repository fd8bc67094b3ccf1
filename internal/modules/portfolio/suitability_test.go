package portfolio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/modules/catalog"
)

func TestEvaluatePortfolioSuitability(t *testing.T) {
	tests := []struct {
		name        string
		portfolio   domain.Portfolio
		user        domain.RiskCategory
		score       float64
		suitable    bool
		recsAtLeast int
	}{
		{
			name:        "one category step away",
			portfolio:   balancedPortfolio(),
			user:        domain.RiskConservative,
			score:       80,
			suitable:    true,
			recsAtLeast: 1,
		},
		{
			name:      "exact match",
			portfolio: balancedPortfolio(),
			user:      domain.RiskModerate,
			score:     100,
			suitable:  true,
		},
		{
			name: "illiquid and concentrated for a conservative user",
			portfolio: domain.NewPortfolio(map[string]float64{
				catalog.RealEstate: 60, catalog.FixedDeposits: 40,
			}),
			user:        domain.RiskConservative,
			score:       0,
			suitable:    false,
			recsAtLeast: 3,
		},
		{
			name:        "undefined user has no category penalty",
			portfolio:   balancedPortfolio(),
			user:        domain.RiskUndefined,
			score:       100,
			suitable:    true,
			recsAtLeast: 1,
		},
		{
			// balanced funds score 2.5, which lands in the aggressive band
			name:        "single asset one step away",
			portfolio:   domain.NewPortfolio(map[string]float64{catalog.BalancedFunds: 100}),
			user:        domain.RiskModerate,
			score:       60,
			suitable:    false,
			recsAtLeast: 2,
		},
	}

	a, _ := newTestAnalyzer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := a.EvaluatePortfolioSuitability(context.Background(), tt.portfolio,
				domain.UserRiskProfile{UserID: "u1", RiskProfile: tt.user})
			require.NoError(t, err)

			assert.InDelta(t, tt.score, s.MatchScore, 1e-9)
			assert.Equal(t, tt.suitable, s.IsSuitable)
			assert.GreaterOrEqual(t, len(s.Recommendations), tt.recsAtLeast)
			assert.Equal(t, tt.user, s.UserRisk)
		})
	}
}

func TestEvaluatePortfolioSuitability_InvalidPortfolio(t *testing.T) {
	a, _ := newTestAnalyzer(t)

	_, err := a.EvaluatePortfolioSuitability(context.Background(),
		domain.NewPortfolio(map[string]float64{catalog.TreasuryBills: 95}),
		domain.UserRiskProfile{RiskProfile: domain.RiskModerate})
	assert.ErrorIs(t, err, domain.ErrInvalidPortfolio)
}

func TestEvaluatePortfolioSuitability_UnknownUserCategory(t *testing.T) {
	a, _ := newTestAnalyzer(t)

	_, err := a.EvaluatePortfolioSuitability(context.Background(), balancedPortfolio(),
		domain.UserRiskProfile{UserID: "u1", RiskProfile: "reckless"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownRiskProfile)

	var unknown *domain.UnknownRiskProfileError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "reckless", unknown.Profile)
}
