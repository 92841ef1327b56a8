package terrain

import "math/rand/v2"

// Spread bounds the raw displacement samples: Source values lie in
// [-Spread, Spread).
const Spread = 2.0

// Source yields raw displacement samples for the generator.
// Generators scale each sample by the amplitude of the current level.
type Source interface {
	Sample() float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() float64

// Sample calls f.
func (f SourceFunc) Sample() float64 { return f() }

type pcgSource struct {
	r *rand.Rand
}

// NewSource returns a deterministic Source drawing uniformly from
// [-Spread, Spread). Equal seeds yield equal sequences.
func NewSource(seed uint64) Source {
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *pcgSource) Sample() float64 {
	return s.r.Float64()*2*Spread - Spread
}
