package sim

import "time"

// GlucoseBuffer is the minute-resolution working trace of one subject run,
// length days*1440, mutated in place by the Scheduler and PostProcess.
// It is exclusively owned by the run that allocated it.
type GlucoseBuffer []float64

// NewGlucoseBuffer allocates a buffer of days*1440 minutes at the given
// baseline level.
func NewGlucoseBuffer(days int, baseline float64) GlucoseBuffer {
	buf := make(GlucoseBuffer, days*minutesPerDay)
	for i := range buf {
		buf[i] = baseline
	}
	return buf
}

// GlucoseSample is one 5-minute output row.
type GlucoseSample struct {
	TimeMin   int       // minute offset from the start of the run
	Glucose   float64   // mg/dL
	Timestamp time.Time // epoch + TimeMin minutes
}

// GlucoseTable is the downsampled output series, one row per 5 minutes.
type GlucoseTable []GlucoseSample

// Downsample subsamples the minute-resolution buffer every 5th minute
// (including minute 0) and derives each retained sample's timestamp from
// the epoch.
func Downsample(buf GlucoseBuffer, epoch time.Time) GlucoseTable {
	table := make(GlucoseTable, 0, (len(buf)+sampleStride-1)/sampleStride)
	for i := 0; i < len(buf); i += sampleStride {
		table = append(table, GlucoseSample{
			TimeMin:   i,
			Glucose:   buf[i],
			Timestamp: epoch.Add(time.Duration(i) * time.Minute),
		})
	}
	return table
}
