package shapes

import "math/rand"

// Source is the randomness a shape engine draws from.
// *rand.Rand satisfies it; tests pass a scripted sequence.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSource returns a seeded pseudo-random source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Pick draws one kind uniformly from pool. pool must not be empty.
func Pick(src Source, pool []Kind) Kind {
	return pool[src.Intn(len(pool))]
}
