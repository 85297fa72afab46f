package sim

import "math/rand"

// Small sampling helpers over an explicit *rand.Rand. Every draw in the
// engine goes through these or the rand primitives directly, in a fixed
// order, so a seeded stream replays identically.

// uniform draws from U[lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// uniformInt draws an integer from [lo, hi] inclusive.
func uniformInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// truncNormal draws from Normal(mean, std) clamped to [lo, hi].
// Clamping (rather than rejection sampling) keeps the draw count fixed,
// which the reproducibility contract depends on.
func truncNormal(rng *rand.Rand, mean, std, lo, hi float64) float64 {
	return clamp(rng.NormFloat64()*std+mean, lo, hi)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
