package engine

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness the engine draws from. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n > 0.
	IntN(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed picks one from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// between draws uniformly from the closed range [lo, hi].
func between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}

// scaled returns floor(base * U) with U uniform in [0.9, 1.1).
func scaled(src Source, base int) int {
	return int(float64(base) * (0.9 + src.Float64()*0.2))
}
