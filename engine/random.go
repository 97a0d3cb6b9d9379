package engine

import (
	"math/rand"
	"time"
)

// Random is the gameplay randomness source
// Cosmetic randomness (particles) must not draw from it
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom returns a seeded source, seed 0 picks a time-based seed
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// rangeDuration draws a uniform whole-millisecond duration in [lo, hi]
func rangeDuration(r Random, lo, hi time.Duration) time.Duration {
	span := int((hi - lo) / time.Millisecond)
	return lo + time.Duration(r.Intn(span+1))*time.Millisecond
}
