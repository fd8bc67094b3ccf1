// Package profiles stores user financial profiles, portfolios and versioned
// risk profiles.
package profiles

import (
	"context"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

// Repository is the profile store. Lookups of missing users return an error
// wrapping domain.ErrNotFound.
type Repository interface {
	SaveFinancialProfile(ctx context.Context, p domain.UserFinancialProfile) error
	GetFinancialProfile(ctx context.Context, userID string) (domain.UserFinancialProfile, error)

	SavePortfolio(ctx context.Context, userID string, p domain.Portfolio) error
	GetPortfolio(ctx context.Context, userID string) (domain.Portfolio, error)

	// SaveRiskProfile stores p as the user's next version and supersedes the
	// previous current version. The returned profile carries the new ID and version.
	SaveRiskProfile(ctx context.Context, p domain.UserRiskProfile) (domain.UserRiskProfile, error)
	GetRiskProfile(ctx context.Context, userID string) (domain.UserRiskProfile, error)
	// GetRiskProfileHistory returns every version, oldest first
	GetRiskProfileHistory(ctx context.Context, userID string) ([]domain.UserRiskProfile, error)

	// ListUserIDs returns users with a stored financial profile, sorted
	ListUserIDs(ctx context.Context) ([]string, error)
}
