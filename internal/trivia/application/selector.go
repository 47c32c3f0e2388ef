package application

import (
	"math/rand/v2"
	"sync"

	"github.com/sebuszqo/TriviaAPI/internal/trivia/domain"
)

// Selector picks a random question the player has not seen yet.
type Selector struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewSelector() *Selector {
	return &Selector{}
}

// NewSelectorWithSource makes draws reproducible in tests.
func NewSelectorWithSource(src rand.Source) *Selector {
	return &Selector{rand: rand.New(src)}
}

func (s *Selector) intN(n int) int {
	if s.rand == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.IntN(n)
}

// Next draws uniformly from pool until it hits an id outside seen. It reports
// false once every pool id is in seen; that check runs before any draw, so a fully
// seen pool can never loop. Ids in seen that are not part of the pool are ignored.
func (s *Selector) Next(pool []domain.Question, seen map[int]struct{}) (*domain.Question, bool) {
	unseen := make([]int, 0, len(pool))
	for i, q := range pool {
		if _, ok := seen[q.ID]; !ok {
			unseen = append(unseen, i)
		}
	}
	if len(unseen) == 0 {
		return nil, false
	}

	maxDraws := 4 * len(pool)
	for draw := 0; draw < maxDraws; draw++ {
		candidate := pool[s.intN(len(pool))]
		if _, ok := seen[candidate.ID]; !ok {
			return &candidate, true
		}
	}

	// heavily seen pools: pick directly among the remaining ones
	candidate := pool[unseen[s.intN(len(unseen))]]
	return &candidate, true
}
