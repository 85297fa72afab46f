package sim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextDrift_AlwaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	drift := 0.0
	for i := 0; i < 100000; i++ {
		drift = nextDrift(rng, drift)
		if drift < -driftBound || drift > driftBound {
			t.Fatalf("drift %v at step %d outside [-18,18]", drift, i)
		}
	}
}

func TestPostProcess_PreservesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	buf := NewGlucoseBuffer(2, 135)
	PostProcess(rng, buf, 135)
	assert.Len(t, buf, 2*minutesPerDay)
}

func TestPostProcess_StaysNearBaselineOnFlatInput(t *testing.T) {
	// With no events, drift is bounded by 18, noise by a few mg/dL and
	// the calibration bias by 3, so a flat trace must stay well inside
	// baseline +/- 30.
	rng := rand.New(rand.NewSource(42))
	baseline := 135.0
	buf := NewGlucoseBuffer(5, baseline)
	PostProcess(rng, buf, baseline)

	for i, v := range buf {
		if v < baseline-30 || v > baseline+30 {
			t.Fatalf("minute %d: %v strayed more than 30 mg/dL from flat baseline", i, v)
		}
	}
}

func TestPostProcess_AppliesNegativeCalibrationBias(t *testing.T) {
	// The constant bias in [1,3] mg/dL pulls the series mean below the
	// baseline; drift and noise are zero-mean, so over a long flat run
	// the sample mean lands below baseline.
	rng := rand.New(rand.NewSource(7))
	baseline := 135.0
	buf := NewGlucoseBuffer(90, baseline)
	PostProcess(rng, buf, baseline)

	sum := 0.0
	for _, v := range buf {
		sum += v
	}
	mean := sum / float64(len(buf))
	assert.Less(t, mean, baseline, "calibration bias should pull the mean below baseline")
}

func TestDownsample_StrideAndTimestamps(t *testing.T) {
	buf := NewGlucoseBuffer(1, 120)
	for i := range buf {
		buf[i] = float64(i)
	}
	epoch := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	table := Downsample(buf, epoch)

	assert.Len(t, table, minutesPerDay/sampleStride)
	for i, s := range table {
		assert.Equal(t, i*sampleStride, s.TimeMin)
		assert.Equal(t, float64(i*sampleStride), s.Glucose)
		if i > 0 {
			assert.Equal(t, 5*time.Minute, s.Timestamp.Sub(table[i-1].Timestamp),
				"timestamps must increase by exactly 5 minutes")
		}
	}
	assert.Equal(t, epoch, table[0].Timestamp)
}

func TestDownsample_PartialTailWindow(t *testing.T) {
	// Buffers whose length is not a multiple of 5 still keep the first
	// sample of every stride: ceil(len/5) rows.
	buf := make(GlucoseBuffer, 23)
	table := Downsample(buf, DefaultEpoch)
	assert.Len(t, table, 5)
	assert.Equal(t, 20, table[4].TimeMin)
}
