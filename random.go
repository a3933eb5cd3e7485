package avatar

import "math/rand/v2"

// RandomSource yields uniformly distributed values in [0, 1).
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// globalRandom draws from the process-wide generator.
type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }
