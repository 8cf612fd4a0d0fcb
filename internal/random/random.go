// Package random provides the randomness capability shared by the identifier
// generator, the file mutator and the scheduler.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source draws uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource delegates to the auto-seeded top-level math/rand/v2 functions.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Default returns a source backed by the process-wide generator.
func Default() Source {
	return globalSource{}
}

// Seeded returns a deterministic source for reproducible runs.
func Seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence replays scripted draws. Each call to IntN returns the next value
// reduced modulo n; once the script is exhausted it starts over.
// It is intended for tests that need to steer a specific branch.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
	Calls  []int
}

// NewSequence creates a Sequence that replays values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN implements Source.
func (s *Sequence) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, n)
	if len(s.values) == 0 {
		return 0
	}

	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
