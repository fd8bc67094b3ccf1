package domain

import "context"

// MarketDataProvider supplies the current normalized market snapshot.
// Implementations wrap the NSE/CBK/forex clients, which live outside this module.
type MarketDataProvider interface {
	// CurrentSnapshot returns the latest market snapshot
	CurrentSnapshot(ctx context.Context) (MarketSnapshot, error)
}
