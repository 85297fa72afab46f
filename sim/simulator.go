package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Simulate runs one subject: allocates the minute-resolution buffer at the
// configured baseline, schedules every day in order, post-processes the
// whole buffer once and downsamples to 5-minute samples.
//
// All randomness is drawn from rng in a fixed order; the same seeded
// stream reproduces the returned table and log bit-for-bit. The buffer is
// exclusively owned by this call and never shared across runs.
func Simulate(cfg SubjectConfig, rng *rand.Rand) (GlucoseTable, EventLog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	buf := NewGlucoseBuffer(cfg.Days, cfg.Baseline)
	sched := &Scheduler{Config: cfg.Scheduler, Shape: cfg.Shape, Epoch: cfg.Epoch}

	var log EventLog
	for day := 0; day < cfg.Days; day++ {
		log = append(log, sched.ScheduleDay(rng, buf, day)...)
	}

	PostProcess(rng, buf, cfg.Baseline)
	table := Downsample(buf, cfg.Epoch)

	logrus.Debugf("simulated %d days: %d samples, %d events", cfg.Days, len(table), len(log))
	return table, log, nil
}
