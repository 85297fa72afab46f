// Package sim provides the single-subject CGM trace synthesis engine.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - kernel.go: the response kernel that turns one event into a glucose curve
//   - scheduler.go: the per-day stochastic event scheduler
//   - simulator.go: the orchestration of days, post-processing and downsampling
//
// # Architecture
//
// A subject run owns one minute-resolution GlucoseBuffer. The Scheduler draws
// a randomized set of behavioral/physiological events per day (meals, snacks,
// exercise, nocturnal hypoglycemia, unexplained spikes and dips), renders each
// through the response kernel and accumulates the contribution in place. The
// post-processor then applies drift, stabilizing feedback, sensor noise and
// smoothing over the whole buffer before downsampling to 5-minute samples.
//
// All randomness flows through one explicit *rand.Rand per run: the same
// seeded stream reproduces the glucose table and event log bit-for-bit.
// Multi-subject orchestration lives in sim/cohort, which derives an isolated
// stream per subject via PartitionedRNG.
package sim
