package sim

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Event shape ranges. Windows bound how long each kernel is rendered;
// contributions past the end of the buffer are truncated.
const (
	mealWindowMin  = 180
	snackWindowMin = 100
	exerciseWindow = 80
	mildHypoWindow = 80
	sevHypoWindow  = 100
	spikeWindow    = 50

	mealJitterMin = 30 // meals move by up to +/-30 minutes
	dayOffsetStd  = 14 // day-to-day baseline variability, mg/dL
)

// DailyContext is the ephemeral per-day state: generated fresh each day,
// discarded after use, never persisted.
type DailyContext struct {
	ExercisedToday     bool
	InsulinSensitivity float64 // clamped to [0.5, 1.7]
	DayOffset          float64 // whole-day baseline shift, mg/dL
}

// newDailyContext draws the per-day state. Draw order is fixed:
// sensitivity, day offset, exercise decision.
func newDailyContext(rng *rand.Rand, cfg SchedulerConfig) DailyContext {
	return DailyContext{
		InsulinSensitivity: truncNormal(rng, 1.0, 0.3, 0.5, 1.7),
		DayOffset:          rng.NormFloat64() * dayOffsetStd,
		ExercisedToday:     rng.Float64() < cfg.ExerciseProb,
	}
}

// Scheduler draws one day's worth of events and renders them into the
// shared glucose buffer.
type Scheduler struct {
	Config SchedulerConfig
	Shape  KernelShape
	Epoch  time.Time
}

// ScheduleDay populates day `day` of buf with a randomized event set and
// returns the event records in generation order. Event types run in a
// fixed sequence (meals, snacks, exercise, mild hypo, severe hypo, spikes,
// dips); within that sequence every stochastic draw has a fixed position,
// so a seeded stream reproduces the day exactly.
func (s *Scheduler) ScheduleDay(rng *rand.Rand, buf GlucoseBuffer, day int) EventLog {
	ctx := newDailyContext(rng, s.Config)

	// Day-to-day baseline variability: shift the whole 1440-minute span
	// before any event is rendered.
	dayStart := day * minutesPerDay
	for i := dayStart; i < dayStart+minutesPerDay && i < len(buf); i++ {
		buf[i] += ctx.DayOffset
	}

	var events EventLog
	events = append(events, s.scheduleMeals(rng, buf, day, ctx)...)
	events = append(events, s.scheduleSnacks(rng, buf, day, ctx)...)
	events = append(events, s.scheduleExercise(rng, buf, day, ctx)...)
	events = append(events, s.scheduleNightHypo(rng, buf, day)...)
	events = append(events, s.scheduleExcursions(rng, buf, day)...)

	logrus.Debugf("day %d: %d events, sensitivity=%.2f offset=%+.1f exercised=%v",
		day, len(events), ctx.InsulinSensitivity, ctx.DayOffset, ctx.ExercisedToday)
	return events
}

// record builds one log entry at an absolute minute offset.
func (s *Scheduler) record(typ EventType, timeMin int, value float64) EventRecord {
	return EventRecord{
		TimeMin:   timeMin,
		Type:      typ,
		Value:     value,
		Timestamp: s.Epoch.Add(time.Duration(timeMin) * time.Minute),
	}
}

// scheduleMeals renders the day's main meals. Each nominal meal is skipped
// with MealSkipProb, otherwise jittered in time and perturbed in size; the
// glucose response scales with the day's insulin sensitivity.
func (s *Scheduler) scheduleMeals(rng *rand.Rand, buf GlucoseBuffer, day int, ctx DailyContext) EventLog {
	var events EventLog
	for i, nominal := range s.Config.MealTimes {
		if rng.Float64() < s.Config.MealSkipProb {
			continue
		}
		jitter := uniformInt(rng, -mealJitterMin, mealJitterMin)
		minute := nominal + jitter

		carbs := s.Config.MealCarbs[i]
		if rng.Float64() < s.Config.MealBoostProb {
			carbs += uniform(rng, 25, 50)
		}
		carbs += rng.NormFloat64() * 25

		mult := truncNormal(rng, 1.1, 0.3, 0.6, 1.6)
		p := KernelParams{
			Delay: CircadianDelay(rng, minute),
			Tau:   uniform(rng, 15, 30),
			Peak:  ctx.InsulinSensitivity * mult * carbs,
			Gain:  uniform(rng, 0.9, 1.1),
		}

		base := day*minutesPerDay + minute
		accumulate(buf, s.Shape, p, base, mealWindowMin, +1)
		events = append(events, s.record(EventMeal, base, carbs))
	}
	return events
}

// scheduleSnacks renders 2-8 smaller carbohydrate loads across the waking
// hours, with a weaker insulin multiplier than main meals.
func (s *Scheduler) scheduleSnacks(rng *rand.Rand, buf GlucoseBuffer, day int, ctx DailyContext) EventLog {
	var events EventLog
	n := uniformInt(rng, 2, 8)
	for i := 0; i < n; i++ {
		minute := uniformInt(rng, 480, 1320)
		carbs := truncNormal(rng, 25, 10, 10, 35)
		mult := truncNormal(rng, 0.45, 0.08, 0.3, 0.7)
		p := KernelParams{
			Delay: CircadianDelay(rng, minute),
			Tau:   uniform(rng, 8, 20),
			Peak:  ctx.InsulinSensitivity * mult * carbs,
			Gain:  1.0,
		}

		base := day*minutesPerDay + minute
		accumulate(buf, s.Shape, p, base, snackWindowMin, +1)
		events = append(events, s.record(EventSnack, base, carbs))
	}
	return events
}

// scheduleExercise renders at most one daytime session, subtracting its
// response from the buffer. The decision was made in the DailyContext.
func (s *Scheduler) scheduleExercise(rng *rand.Rand, buf GlucoseBuffer, day int, ctx DailyContext) EventLog {
	if !ctx.ExercisedToday {
		return nil
	}
	minute := uniformInt(rng, 600, 1080)
	drop := uniform(rng, 12, 26)
	p := KernelParams{
		Delay: CircadianDelay(rng, minute),
		Tau:   uniform(rng, 22, 40),
		Peak:  drop,
		Gain:  1.0,
	}

	base := day*minutesPerDay + minute
	accumulate(buf, s.Shape, p, base, exerciseWindow, -1)
	return EventLog{s.record(EventExercise, base, drop)}
}

// scheduleNightHypo renders the nocturnal hypoglycemia dips. The mild and
// severe variants are decided independently; both may fire the same night.
func (s *Scheduler) scheduleNightHypo(rng *rand.Rand, buf GlucoseBuffer, day int) EventLog {
	var events EventLog

	if rng.Float64() < s.Config.MildHypoProb {
		minute := uniformInt(rng, 120, 300)
		dip := uniform(rng, 6, 24)
		p := KernelParams{
			Delay: CircadianDelay(rng, minute),
			Tau:   uniform(rng, 28, 40),
			Peak:  dip,
			Gain:  1.0,
		}
		base := day*minutesPerDay + minute
		accumulate(buf, s.Shape, p, base, mildHypoWindow, -1)
		events = append(events, s.record(EventNightHypoMild, base, dip))
	}

	if rng.Float64() < s.Config.SevereHypoProb {
		minute := uniformInt(rng, 120, 300)
		dip := uniform(rng, 30, 50)
		p := KernelParams{
			Delay: CircadianDelay(rng, minute),
			Tau:   uniform(rng, 30, 50),
			Peak:  dip,
			Gain:  uniform(rng, 1.0, 1.3),
		}
		base := day*minutesPerDay + minute
		accumulate(buf, s.Shape, p, base, sevHypoWindow, -1)
		events = append(events, s.record(EventNightHypoSevere, base, dip))
	}

	return events
}

// scheduleExcursions renders the unexplained spikes and dips. These are
// not circadian-gated: their onset delay is a direct short uniform draw.
func (s *Scheduler) scheduleExcursions(rng *rand.Rand, buf GlucoseBuffer, day int) EventLog {
	var events EventLog

	nSpikes := uniformInt(rng, 8, 12)
	for i := 0; i < nSpikes; i++ {
		minute := uniformInt(rng, 300, 1320)
		mag := uniform(rng, 20, 40)
		p := KernelParams{
			Delay: uniformInt(rng, 1, 5),
			Tau:   uniform(rng, 26, 38),
			Peak:  mag,
			Gain:  1.0,
		}
		base := day*minutesPerDay + minute
		accumulate(buf, s.Shape, p, base, spikeWindow, +1)
		events = append(events, s.record(EventRandomSpike, base, mag))
	}

	nDips := uniformInt(rng, 8, 12)
	for i := 0; i < nDips; i++ {
		minute := uniformInt(rng, 300, 1320)
		mag := uniform(rng, 35, 55)
		p := KernelParams{
			Delay: uniformInt(rng, 1, 5),
			Tau:   uniform(rng, 26, 38),
			Peak:  mag,
			Gain:  1.0,
		}
		base := day*minutesPerDay + minute
		accumulate(buf, s.Shape, p, base, spikeWindow, -1)
		events = append(events, s.record(EventRandomDip, base, mag))
	}

	return events
}
