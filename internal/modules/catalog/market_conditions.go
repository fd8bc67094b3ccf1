package catalog

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

// MarketConditions holds the process-wide market regime applied to every
// catalog read. It is safe for concurrent use.
type MarketConditions struct {
	log zerolog.Logger

	mu      sync.RWMutex
	current domain.MarketCondition
}

// NewMarketConditions creates the service in the normal regime
func NewMarketConditions(log zerolog.Logger) *MarketConditions {
	return &MarketConditions{
		log:     log.With().Str("component", "market_conditions").Logger(),
		current: domain.MarketNormal,
	}
}

// Current returns the active market condition
func (m *MarketConditions) Current() domain.MarketCondition {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Factor returns the multiplier for the active market condition
func (m *MarketConditions) Factor() float64 {
	return m.Current().Factor()
}

// Update switches the market condition. Unknown names are rejected and the
// current condition is left untouched.
func (m *MarketConditions) Update(condition string) error {
	c, err := domain.ParseMarketCondition(condition)
	if err != nil {
		return err
	}

	m.mu.Lock()
	previous := m.current
	m.current = c
	m.mu.Unlock()

	m.log.Info().
		Str("previous", string(previous)).
		Str("condition", string(c)).
		Float64("factor", c.Factor()).
		Msg("Market condition updated")
	return nil
}
