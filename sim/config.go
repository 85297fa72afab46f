package sim

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned when a caller supplies a parameter the
// engine cannot work with (non-positive day counts, tau, window sizes).
var ErrInvalidArgument = errors.New("invalid argument")

// Engine-wide constants.
const (
	minutesPerDay = 1440
	sampleStride  = 5 // output resolution in minutes

	DefaultDays     = 90
	DefaultBaseline = 135.0 // mg/dL, typical T2D fasting level
	DefaultNoiseStd = 10.0
)

// DefaultEpoch anchors TimeMin offsets to wall-clock timestamps.
var DefaultEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// SchedulerConfig groups the per-day event probabilities and meal plan.
// The zero value is NOT usable; start from DefaultSchedulerConfig.
type SchedulerConfig struct {
	MealTimes      []int     // nominal meal minutes-of-day
	MealCarbs      []float64 // base carbohydrate grams per meal (same length)
	MealSkipProb   float64   // chance each meal is skipped outright
	MealBoostProb  float64   // chance a meal gets an extra 25-50 g of carbs
	ExerciseProb   float64   // chance of one exercise session per day
	MildHypoProb   float64   // chance of a mild nocturnal hypoglycemic dip
	SevereHypoProb float64   // chance of a severe nocturnal dip (independent)
}

// DefaultSchedulerConfig returns the calibrated T2D behavior model:
// three meals near 08:00/13:00/19:00 plus snacking, occasional exercise
// and nocturnal hypoglycemia.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		MealTimes:      []int{480, 780, 1140},
		MealCarbs:      []float64{55, 70, 80},
		MealSkipProb:   0.07,
		MealBoostProb:  0.40,
		ExerciseProb:   0.40,
		MildHypoProb:   0.60,
		SevereHypoProb: 0.07,
	}
}

// Validate reports ErrInvalidArgument for a malformed scheduler config.
func (c SchedulerConfig) Validate() error {
	if len(c.MealTimes) == 0 || len(c.MealTimes) != len(c.MealCarbs) {
		return fmt.Errorf("%w: meal times and carbs must be non-empty and the same length", ErrInvalidArgument)
	}
	for _, p := range []float64{c.MealSkipProb, c.MealBoostProb, c.ExerciseProb, c.MildHypoProb, c.SevereHypoProb} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: probability %v outside [0,1]", ErrInvalidArgument, p)
		}
	}
	return nil
}

// SubjectConfig groups the parameters of one subject run.
type SubjectConfig struct {
	Days     int     // simulated days, must be > 0
	Baseline float64 // fasting glucose level the buffer starts at, mg/dL

	// NoiseStd is accepted for interface compatibility with the cohort
	// generator but is not consumed by the sensor-noise model, which draws
	// a per-run sigma from U[0.6,1.2] instead. Known inconsistency carried
	// over from the reference behavior; see DESIGN.md.
	NoiseStd float64

	Epoch     time.Time // timestamp of minute 0
	Shape     KernelShape
	Scheduler SchedulerConfig
}

// DefaultSubjectConfig returns a 90-day run at a 135 mg/dL baseline.
func DefaultSubjectConfig() SubjectConfig {
	return SubjectConfig{
		Days:      DefaultDays,
		Baseline:  DefaultBaseline,
		NoiseStd:  DefaultNoiseStd,
		Epoch:     DefaultEpoch,
		Shape:     DefaultKernelShape(),
		Scheduler: DefaultSchedulerConfig(),
	}
}

// Validate reports ErrInvalidArgument for unusable run parameters.
func (c SubjectConfig) Validate() error {
	if c.Days <= 0 {
		return fmt.Errorf("%w: days must be > 0, got %d", ErrInvalidArgument, c.Days)
	}
	return c.Scheduler.Validate()
}
