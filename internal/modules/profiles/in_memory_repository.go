package profiles

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

// InMemoryRepository is a Repository kept in process memory
type InMemoryRepository struct {
	financial    map[string]domain.UserFinancialProfile
	portfolios   map[string]domain.Portfolio
	riskProfiles map[string][]domain.UserRiskProfile // oldest first
	mu           sync.RWMutex
	log          zerolog.Logger
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository(log zerolog.Logger) *InMemoryRepository {
	return &InMemoryRepository{
		financial:    make(map[string]domain.UserFinancialProfile),
		portfolios:   make(map[string]domain.Portfolio),
		riskProfiles: make(map[string][]domain.UserRiskProfile),
		log:          log.With().Str("repository", "profiles_inmemory").Logger(),
	}
}

func (r *InMemoryRepository) SaveFinancialProfile(_ context.Context, p domain.UserFinancialProfile) error {
	if p.UserID == "" {
		return fmt.Errorf("financial profile has no user id")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p.FinancialGoals = append([]string(nil), p.FinancialGoals...)
	r.financial[p.UserID] = p
	return nil
}

func (r *InMemoryRepository) GetFinancialProfile(_ context.Context, userID string) (domain.UserFinancialProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.financial[userID]
	if !ok {
		return domain.UserFinancialProfile{}, fmt.Errorf("financial profile for %s: %w", userID, domain.ErrNotFound)
	}
	p.FinancialGoals = append([]string(nil), p.FinancialGoals...)
	return p, nil
}

func (r *InMemoryRepository) SavePortfolio(_ context.Context, userID string, p domain.Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.portfolios[userID] = clonePortfolio(p)
	return nil
}

func (r *InMemoryRepository) GetPortfolio(_ context.Context, userID string) (domain.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.portfolios[userID]
	if !ok {
		return domain.Portfolio{}, fmt.Errorf("portfolio for %s: %w", userID, domain.ErrNotFound)
	}
	return clonePortfolio(p), nil
}

func (r *InMemoryRepository) SaveRiskProfile(_ context.Context, p domain.UserRiskProfile) (domain.UserRiskProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = uuid.New().String()
	p.Version = len(r.riskProfiles[p.UserID]) + 1
	r.riskProfiles[p.UserID] = append(r.riskProfiles[p.UserID], p)

	r.log.Debug().Str("user_id", p.UserID).Int("version", p.Version).Msg("Stored risk profile")
	return p, nil
}

func (r *InMemoryRepository) GetRiskProfile(_ context.Context, userID string) (domain.UserRiskProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	versions := r.riskProfiles[userID]
	if len(versions) == 0 {
		return domain.UserRiskProfile{}, fmt.Errorf("risk profile for %s: %w", userID, domain.ErrNotFound)
	}
	return versions[len(versions)-1], nil
}

func (r *InMemoryRepository) GetRiskProfileHistory(_ context.Context, userID string) ([]domain.UserRiskProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.UserRiskProfile(nil), r.riskProfiles[userID]...), nil
}

func (r *InMemoryRepository) ListUserIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.SortedKeys(r.financial), nil
}

func clonePortfolio(p domain.Portfolio) domain.Portfolio {
	out := domain.NewPortfolio(p.Allocations)
	out.Assets = append([]domain.Asset(nil), p.Assets...)
	out.TotalValue = p.TotalValue
	return out
}
