package random

import (
	"math/rand/v2"
)

// Source supplies the randomness used for jitter and shuffling. It is injected
// so tests can pin a seed or substitute deterministic sequences.
type Source interface {
	// IntBetween returns a uniform random integer in [min, max] inclusive.
	IntBetween(min, max int) int
	// Shuffle applies a uniform permutation over n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

type pcgSource struct {
	rng *rand.Rand
}

// New returns a Source seeded deterministically from seed.
func New(seed uint64) Source {
	return &pcgSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

// NewFromGlobal returns a Source backed by the process-wide generator.
func NewFromGlobal() Source {
	return globalSource{}
}

func (s *pcgSource) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min+1)
}

func (s *pcgSource) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

type globalSource struct{}

func (globalSource) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.IntN(max-min+1)
}

func (globalSource) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}
