package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeededRandomizer_Reproducible(t *testing.T) {
	a := NewSeededRandomizer(99)
	b := NewSeededRandomizer(99)

	assert.Equal(t, a.Perm(10), b.Perm(10))
	assert.Equal(t,
		GenerateMCQs(NewSeededRandomizer(5), []string{"alpha", "bravo", "charlie"}),
		GenerateMCQs(NewSeededRandomizer(5), []string{"alpha", "bravo", "charlie"}),
	)
}

func TestNewRandomizer_ConcurrentUse(t *testing.T) {
	rng := NewRandomizer()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mcqs := GenerateMCQs(rng, []string{"alpha", "bravo"})
				assert.Len(t, mcqs, MCQCount)
			}
		}()
	}
	wg.Wait()
}
