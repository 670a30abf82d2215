// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"tank-battle/internal/defs"
)

// PRNGService wraps a seeded math/rand source so that every random decision
// in a run (AI turns, spawn columns, drops, terrain fill) replays for a
// given seed.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a service with the given seed. A zero seed uses the
// current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// ChooseWeighted draws one class with probability proportional to its
// weight. Weights need not sum to one. Entries with non-positive weight are
// never chosen unless every weight is non-positive, in which case the first
// entry is returned.
func (s *PRNGService) ChooseWeighted(entries []defs.ClassWeight) defs.TankClass {
	if len(entries) == 0 {
		return ""
	}

	total := 0.0
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total <= 0 {
		return entries[0].Class
	}

	r := s.rng.Float64() * total
	upto := 0.0
	for _, e := range entries {
		if e.Weight <= 0 {
			continue
		}
		if upto+e.Weight > r {
			return e.Class
		}
		upto += e.Weight
	}

	// float rounding can leave r at the very top of the range
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Weight > 0 {
			return entries[i].Class
		}
	}
	return entries[0].Class
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](s *PRNGService, items []T) T {
	return items[s.Intn(len(items))]
}
