package random

import (
	"math/rand"
	"sync"
)

// Source serializes draws from one seeded generator. The screening
// generator and the seat purchaser both consume this single ordered
// sequence, so a fixed seed reproduces a whole run even though the two
// workers tick independently.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// IntBetween returns a uniform draw in [min, max], both bounds inclusive.
func (s *Source) IntBetween(min, max int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Intn(max-min+1)
}
