package sim

import "time"

// EventType labels the physiological/behavioral event that produced a
// glucose perturbation.
type EventType string

const (
	EventMeal            EventType = "meal"
	EventSnack           EventType = "snack"
	EventExercise        EventType = "exercise"
	EventNightHypoMild   EventType = "night_hypo_mild"
	EventNightHypoSevere EventType = "night_hypo_severe"
	EventRandomSpike     EventType = "random_spike"
	EventRandomDip       EventType = "random_dip"
)

// EventRecord is one entry of the machine-readable event log.
//
// Value is the event's primary magnitude: grams of carbohydrate for meals
// and snacks, a glucose delta in mg/dL for everything else. TimeMin is the
// absolute minute offset from the start of the run (jitter included), and
// Timestamp is derived as epoch + TimeMin minutes.
type EventRecord struct {
	TimeMin   int
	Type      EventType
	Value     float64
	Timestamp time.Time
}

// EventLog is the append-only sequence of events for one subject run.
// Records are appended in generation order: within a day the event types
// run in a fixed sequence (meals, snacks, exercise, nocturnal dips, spikes,
// dips), so the log is NOT sorted by TimeMin. Consumers that need
// chronological order must sort themselves; the generation order is part
// of the reproducibility contract.
type EventLog []EventRecord
