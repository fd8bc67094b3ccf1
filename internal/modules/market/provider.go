package market

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/OCHOLLA20/PesaGuru-Financial-Advisory-Chatbot-sub001/internal/domain"
)

var _ domain.MarketDataProvider = (*StaticProvider)(nil)

// StaticProvider serves a snapshot set by the caller. It stands in for the
// live NSE/CBK feeds and is safe for concurrent use.
type StaticProvider struct {
	mu       sync.RWMutex
	snapshot domain.MarketSnapshot
}

// NewStaticProvider creates a provider holding s
func NewStaticProvider(s domain.MarketSnapshot) *StaticProvider {
	return &StaticProvider{snapshot: cloneSnapshot(s)}
}

// CurrentSnapshot returns a copy of the held snapshot
func (p *StaticProvider) CurrentSnapshot(_ context.Context) (domain.MarketSnapshot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return cloneSnapshot(p.snapshot), nil
}

// Set replaces the held snapshot
func (p *StaticProvider) Set(s domain.MarketSnapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshot = cloneSnapshot(s)
}

// File is the on-disk market input: a base snapshot plus optional closes
// from which volatility and the benchmark change are derived.
type File struct {
	Snapshot  domain.MarketSnapshot `json:"snapshot"`
	Closes    map[string][]float64  `json:"closes,omitempty"`
	Benchmark []float64             `json:"benchmark,omitempty"`
}

// LoadProvider reads a market file and returns a provider for it.
// An empty path yields an empty snapshot stamped with the current time.
func LoadProvider(path string, d *Deriver) (*StaticProvider, error) {
	if path == "" {
		return NewStaticProvider(domain.MarketSnapshot{AsOf: time.Now().UTC()}), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read market file: %w", err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse market file %s: %w", path, err)
	}

	s := f.Snapshot
	if len(f.Closes) > 0 || len(f.Benchmark) > 0 {
		s = d.FromCloses(f.Closes, f.Benchmark).ApplyTo(s)
	}
	if s.AsOf.IsZero() {
		s.AsOf = time.Now().UTC()
	}
	return NewStaticProvider(s), nil
}

func cloneSnapshot(s domain.MarketSnapshot) domain.MarketSnapshot {
	s.VolatilityByMarket = cloneMap(s.VolatilityByMarket)
	s.SectorPerformance = cloneMap(s.SectorPerformance)
	return s
}

func cloneMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
