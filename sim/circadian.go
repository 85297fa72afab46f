package sim

import (
	"math"
	"math/rand"
)

// Circadian delay model constants. The cosine baseline peaks near 03:00
// (slowest gastric response) and bottoms out near 15:00.
const (
	circadianCenterMin    = 18.0  // baseline delay, minutes
	circadianAmplitudeMin = 4.0   // cosine amplitude, minutes
	circadianPeakMinute   = 180.0 // minute-of-day where the baseline peaks
	circadianNoiseStd     = 2.0
	circadianMinDelay     = 8
	circadianMaxDelay     = 30
)

// CircadianDelay maps a minute-of-day t (expected in [0,1440), not
// enforced) to a randomized physiological onset delay in minutes.
// The cosine-modulated baseline gets independent Gaussian noise (sigma=2),
// is rounded to the nearest minute and clamped to [8,30]. Pure function of
// t and the random stream.
func CircadianDelay(rng *rand.Rand, t int) int {
	phase := 2 * math.Pi * (float64(t) - circadianPeakMinute) / minutesPerDay
	base := circadianCenterMin + circadianAmplitudeMin*math.Cos(phase)
	delay := int(math.Round(base + rng.NormFloat64()*circadianNoiseStd))
	if delay < circadianMinDelay {
		return circadianMinDelay
	}
	if delay > circadianMaxDelay {
		return circadianMaxDelay
	}
	return delay
}
