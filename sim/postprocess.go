package sim

import "math/rand"

// Post-processing constants.
const (
	driftDecay = 0.997 // mean-reversion factor of the drift walk
	driftStd   = 0.6   // per-minute drift innovation, mg/dL
	driftBound = 18.0  // drift is clamped to [-driftBound, driftBound]

	// GlucoseEffectiveness is the first-order negative feedback pulling
	// each minute back toward baseline, preventing unbounded drift
	// accumulation.
	GlucoseEffectiveness = 0.002

	sensorNoiseScale = 0.7
)

// nextDrift advances the bounded mean-reverting drift walk by one minute.
func nextDrift(rng *rand.Rand, drift float64) float64 {
	return clamp(drift*driftDecay+rng.NormFloat64()*driftStd, -driftBound, driftBound)
}

// PostProcess runs the whole-buffer passes over a fully populated trace:
//
//  1. bounded mean-reverting drift plus stabilizing feedback toward baseline,
//  2. sensor noise with a per-run sigma drawn from U[0.6,1.2] (scaled by
//     0.7) and a constant calibration bias drawn from U[1.0,3.0],
//  3. two in-place passes of a 3-point weighted moving average.
//
// The buffer is mutated in place; length is unchanged.
func PostProcess(rng *rand.Rand, buf GlucoseBuffer, baseline float64) {
	drift := 0.0
	for i := range buf {
		drift = nextDrift(rng, drift)
		buf[i] += drift
		if i > 0 {
			buf[i] -= GlucoseEffectiveness * (buf[i-1] - baseline)
		}
	}

	sigma := uniform(rng, 0.6, 1.2)
	bias := uniform(rng, 1.0, 3.0)
	for i := range buf {
		buf[i] += rng.NormFloat64()*sigma*sensorNoiseScale - bias
	}

	// Smoothing runs sequentially in place: each interior point blends
	// the already-smoothed left neighbor with the raw right neighbor.
	for pass := 0; pass < 2; pass++ {
		for i := 1; i < len(buf)-1; i++ {
			buf[i] = 0.25*buf[i-1] + 0.5*buf[i] + 0.25*buf[i+1]
		}
	}
}
