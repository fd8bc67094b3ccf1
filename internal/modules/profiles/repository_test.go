package profiles

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/database"
	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

func newSQLiteRepository(t *testing.T) Repository {
	t.Helper()
	db, err := database.New(database.Config{
		Path:    filepath.Join(t.TempDir(), "profiles.db"),
		Profile: database.ProfileScratch,
		Name:    "profiles",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())
	return NewSQLiteRepository(db.Conn(), zerolog.Nop())
}

func repositories(t *testing.T) map[string]Repository {
	return map[string]Repository{
		"memory": NewInMemoryRepository(zerolog.Nop()),
		"sqlite": newSQLiteRepository(t),
	}
}

func TestRepository_FinancialProfileRoundTrip(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			in := domain.UserFinancialProfile{
				UserID:         "wanjiku",
				Age:            29,
				Income:         85_000,
				Debt:           120_000,
				FinancialGoals: []string{domain.GoalHome, domain.GoalRetirement},
				Location:       "Nairobi",
				RiskPreferences: domain.RiskPreferences{
					RiskScore:         55,
					InvestmentHorizon: domain.HorizonLong,
				},
			}
			require.NoError(t, repo.SaveFinancialProfile(ctx, in))

			out, err := repo.GetFinancialProfile(ctx, "wanjiku")
			require.NoError(t, err)
			assert.Equal(t, in, out)

			in.Income = 95_000
			require.NoError(t, repo.SaveFinancialProfile(ctx, in))
			out, err = repo.GetFinancialProfile(ctx, "wanjiku")
			require.NoError(t, err)
			assert.Equal(t, 95_000.0, out.Income)

			_, err = repo.GetFinancialProfile(ctx, "otieno")
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestRepository_PortfolioRoundTrip(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			in := domain.Portfolio{
				Allocations: map[string]float64{"treasury_bills": 40, "nse_blue_chips": 60},
				Assets:      []domain.Asset{{Type: "nse_blue_chips", ID: "SCOM", Name: "Safaricom", Amount: 60_000}},
				TotalValue:  100_000,
			}
			require.NoError(t, repo.SavePortfolio(ctx, "u1", in))

			out, err := repo.GetPortfolio(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, in, out)

			_, err = repo.GetPortfolio(ctx, "u2")
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestRepository_RiskProfileVersions(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			evaluated := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

			_, err := repo.GetRiskProfile(ctx, "u1")
			require.ErrorIs(t, err, domain.ErrNotFound)

			first, err := repo.SaveRiskProfile(ctx, domain.UserRiskProfile{
				UserID:                 "u1",
				RiskToleranceScore:     18,
				RiskProfile:            domain.RiskConservative,
				QuestionnaireResponses: map[string]int{"q1": 18},
				LastUpdated:            evaluated,
			})
			require.NoError(t, err)
			assert.Equal(t, 1, first.Version)
			assert.NotEmpty(t, first.ID)

			second, err := repo.SaveRiskProfile(ctx, domain.UserRiskProfile{
				UserID:             "u1",
				RiskToleranceScore: 52,
				RiskProfile:        domain.RiskAggressive,
				LastUpdated:        evaluated.Add(time.Hour),
			})
			require.NoError(t, err)
			assert.Equal(t, 2, second.Version)
			assert.NotEqual(t, first.ID, second.ID)

			current, err := repo.GetRiskProfile(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, second.ID, current.ID)
			assert.Equal(t, domain.RiskAggressive, current.RiskProfile)
			assert.True(t, evaluated.Add(time.Hour).Equal(current.LastUpdated))

			history, err := repo.GetRiskProfileHistory(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, history, 2)
			assert.Equal(t, 1, history[0].Version)
			assert.Equal(t, map[string]int{"q1": 18}, history[0].QuestionnaireResponses)
		})
	}
}

func TestRepository_ListUserIDs(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, id := range []string{"zawadi", "amani", "baraka"} {
				require.NoError(t, repo.SaveFinancialProfile(ctx, domain.UserFinancialProfile{UserID: id}))
			}

			ids, err := repo.ListUserIDs(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"amani", "baraka", "zawadi"}, ids)
		})
	}
}
