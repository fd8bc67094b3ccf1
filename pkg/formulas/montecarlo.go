package formulas

import "math/rand/v2"

// Sampler draws standard normal variates
type Sampler interface {
	NormFloat64() float64
}

// SamplerFactory returns the sampler used by one simulation batch.
// Each batch gets its own sampler so batches can run concurrently.
type SamplerFactory func(batch int) Sampler

// NewSeededSamplerFactory returns a factory whose batch samplers are fully
// determined by seed and batch index.
func NewSeededSamplerFactory(seed uint64) SamplerFactory {
	return func(batch int) Sampler {
		return rand.New(rand.NewPCG(seed, uint64(batch)+1))
	}
}

// NewRandomSamplerFactory returns a factory seeded from the runtime source
func NewRandomSamplerFactory() SamplerFactory {
	return NewSeededSamplerFactory(rand.Uint64())
}

// SimulatePath compounds start over months of normally distributed monthly
// returns and returns the terminal value. The value never drops below zero.
func SimulatePath(start, monthlyMean, monthlyVol float64, months int, s Sampler) float64 {
	v := start
	for m := 0; m < months; m++ {
		v *= 1 + monthlyMean + monthlyVol*s.NormFloat64()
		if v <= 0 {
			return 0
		}
	}
	return v
}
