package formulas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type constSampler float64

func (c constSampler) NormFloat64() float64 { return float64(c) }

func TestSimulatePath_Deterministic(t *testing.T) {
	got := SimulatePath(1000, 0.01, 0.05, 2, constSampler(0))
	assert.InDelta(t, 1020.1, got, 1e-9)

	got = SimulatePath(1000, 0.0, 0.10, 1, constSampler(-1))
	assert.InDelta(t, 900, got, 1e-9)
}

func TestSimulatePath_FloorsAtZero(t *testing.T) {
	got := SimulatePath(1000, 0, 0.5, 12, constSampler(-3))
	assert.Equal(t, 0.0, got)
}

func TestSeededSamplerFactory_Reproducible(t *testing.T) {
	a := NewSeededSamplerFactory(42)
	b := NewSeededSamplerFactory(42)

	for batch := 0; batch < 3; batch++ {
		sa, sb := a(batch), b(batch)
		for i := 0; i < 10; i++ {
			assert.Equal(t, sa.NormFloat64(), sb.NormFloat64())
		}
	}

	assert.NotEqual(t, a(0).NormFloat64(), a(1).NormFloat64(), "batches must use distinct streams")
}
