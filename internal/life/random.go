package life

import (
	"math/rand/v2"
	"time"
)

// Source supplies the coin flips used by Randomize.
// Implementations must return true and false with equal probability.
type Source interface {
	Bool() bool
}

// pcgSource is a Source backed by math/rand/v2 with a PCG generator.
type pcgSource struct {
	r *rand.Rand
}

// NewSource returns a deterministic Source for the given seed.
// A zero seed is replaced with the current time.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &pcgSource{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (s *pcgSource) Bool() bool {
	return s.r.IntN(2) == 1
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() bool

// Bool calls f.
func (f SourceFunc) Bool() bool { return f() }
