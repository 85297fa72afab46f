package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Clinical glucose bands, mg/dL.
const (
	rangeLow  = 70.0
	rangeHigh = 180.0
)

// Summary aggregates clinical-style statistics over a generated trace:
// mean glucose, variability and time-in-range fractions. Useful for
// sanity-checking a synthesized cohort against published T2D populations.
type Summary struct {
	Samples int

	MeanGlucose float64 // mg/dL
	StdDev      float64 // mg/dL
	CV          float64 // coefficient of variation, percent

	// GMI is the glucose management indicator, the standard linear
	// estimate of HbA1c from mean CGM glucose: 3.31 + 0.02392*mean.
	GMI float64

	TimeInRange    float64 // fraction of samples in [70,180] mg/dL
	TimeBelowRange float64 // fraction below 70
	TimeAboveRange float64 // fraction above 180
}

// Summarize computes the Summary of one subject's glucose table.
func Summarize(table GlucoseTable) Summary {
	if len(table) == 0 {
		return Summary{}
	}

	vals := make([]float64, len(table))
	var below, above int
	for i, s := range table {
		vals[i] = s.Glucose
		switch {
		case s.Glucose < rangeLow:
			below++
		case s.Glucose > rangeHigh:
			above++
		}
	}

	mean := stat.Mean(vals, nil)
	sd := math.Sqrt(stat.Variance(vals, nil))

	sum := Summary{
		Samples:        len(vals),
		MeanGlucose:    mean,
		StdDev:         sd,
		GMI:            3.31 + 0.02392*mean,
		TimeBelowRange: float64(below) / float64(len(vals)),
		TimeAboveRange: float64(above) / float64(len(vals)),
	}
	sum.TimeInRange = 1 - sum.TimeBelowRange - sum.TimeAboveRange
	if mean != 0 {
		sum.CV = 100 * sd / mean
	}
	return sum
}

// Print displays the summary at the end of a run.
func (s Summary) Print() {
	fmt.Println("=== Trace Summary ===")
	fmt.Printf("Samples          : %d\n", s.Samples)
	fmt.Printf("Mean Glucose     : %.1f mg/dL\n", s.MeanGlucose)
	fmt.Printf("Std Dev          : %.1f mg/dL (CV %.1f%%)\n", s.StdDev, s.CV)
	fmt.Printf("GMI              : %.2f %%\n", s.GMI)
	fmt.Printf("Time In Range    : %.1f%%\n", 100*s.TimeInRange)
	fmt.Printf("Time Below Range : %.1f%%\n", 100*s.TimeBelowRange)
	fmt.Printf("Time Above Range : %.1f%%\n", 100*s.TimeAboveRange)
}
