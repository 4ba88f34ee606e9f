package util

import (
	"math"
	"math/rand"
)

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// RandomSpread draws uniformly from [-width/2, width/2).
func RandomSpread(rng *rand.Rand, width float64) float64 {
	return (rng.Float64() - 0.5) * width
}
