// Package random provides the injectable integer source robots draw their
// landing positions from.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source supplies uniformly distributed integers in the inclusive range [lo, hi].
type Source interface {
	IntInRange(lo, hi int) int
}

// System draws from the process-wide generator, which is seeded from
// operating system entropy at startup.
type System struct{}

// IntInRange implements Source.
func (System) IntInRange(lo, hi int) int {
	return drawInRange(globalRand{}, lo, hi)
}

// uint64Source is the part of *rand.Rand that drawInRange needs.
type uint64Source interface {
	Uint64() uint64
	Uint64N(n uint64) uint64
}

type globalRand struct{}

func (globalRand) Uint64() uint64          { return rand.Uint64() }
func (globalRand) Uint64N(n uint64) uint64 { return rand.Uint64N(n) }

// drawInRange returns a uniform value in [lo, hi]. The span is computed in
// uint64 so ranges wider than MaxInt do not overflow; a span that wraps to 0
// covers every int.
func drawInRange(r uint64Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return int(r.Uint64())
	}
	return lo + int(r.Uint64N(span))
}

// NewSeed returns a fresh seed from the process-wide generator, for callers
// that want a reproducible run but were not given a seed.
func NewSeed() uint64 {
	return rand.Uint64()
}

// Seeded is a reproducible PCG-backed source. It is safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded creates a source whose draws are fully determined by seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntInRange implements Source.
func (s *Seeded) IntInRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return drawInRange(s.rng, lo, hi)
}

// Sequence replays a fixed list of values, ignoring the requested range.
// Once exhausted it keeps returning the last value; an empty sequence
// returns lo. Intended for tests and externally pinned landings.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequence creates a source that yields values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: append([]int(nil), values...)}
}

// IntInRange implements Source.
func (s *Sequence) IntInRange(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.values) == 0 {
		return lo
	}
	if s.next >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.next]
	s.next++
	return v
}
