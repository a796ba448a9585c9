package domain

import (
	"math/rand"
	"sync"
	"time"
)

// Randomizer is the source of shuffling and sampling used when building
// multiple-choice options. *rand.Rand satisfies it.
type Randomizer interface {
	Shuffle(n int, swap func(i, j int))
	Perm(n int) []int
}

// lockedRandomizer serializes access to a *rand.Rand, which is not safe for
// concurrent use on its own.
type lockedRandomizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomizer returns a Randomizer seeded from the current time.
func NewRandomizer() Randomizer {
	return NewSeededRandomizer(time.Now().UnixNano())
}

// NewSeededRandomizer returns a Randomizer that yields the same sequence for the same seed.
func NewSeededRandomizer(seed int64) Randomizer {
	return &lockedRandomizer{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRandomizer) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rnd.Shuffle(n, swap)
}

func (r *lockedRandomizer) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Perm(n)
}
