package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cgm-sim/cgm-sim/sim"
	"github.com/cgm-sim/cgm-sim/sim/cohort"
)

var (
	// CLI flags for cohort generation
	seed     int64   // Master seed for all subject streams
	subjects int     // Number of simulated subjects
	days     int     // Simulated days per subject
	baseline float64 // Fasting glucose baseline in mg/dL
	noiseStd float64 // Accepted for compatibility; see sim.SubjectConfig
	logLevel string  // Log verbosity level

	// Preset selection
	presetFile string // YAML file with named cohort presets
	presetName string // Preset to load from the file

	// CSV export paths (empty = no export)
	glucoseOut string
	eventsOut  string
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cgmsim",
	Short: "Synthetic CGM trace generator for simulated T2D subjects",
}

// runCmd executes a cohort generation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a synthetic CGM cohort",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec := cohort.Spec{
			Subjects: subjects,
			Seed:     seed,
			Days:     days,
			Baseline: baseline,
			NoiseStd: noiseStd,
		}
		if presetName != "" {
			preset := GetCohortPreset(presetFile, presetName)
			if preset == nil {
				logrus.Fatalf("Preset %q not found in %s", presetName, presetFile)
			}
			preset.Seed = seed
			spec = *preset
		}

		logrus.Infof("Generating cohort: subjects=%d days=%d baseline=%.1f seed=%d",
			spec.Subjects, spec.Days, spec.Baseline, spec.Seed)
		startTime := time.Now()

		ds, err := cohort.Generate(spec)
		if err != nil {
			logrus.Fatalf("Cohort generation failed: %v", err)
		}

		for subject := 0; subject < spec.Subjects; subject++ {
			s := sim.Summarize(ds.SubjectTable(subject))
			logrus.Infof("subject %d: mean=%.1f mg/dL sd=%.1f cv=%.1f%% gmi=%.2f tir=%.1f%%",
				subject, s.MeanGlucose, s.StdDev, s.CV, s.GMI, 100*s.TimeInRange)
		}

		if glucoseOut != "" {
			if err := WriteGlucoseCSV(glucoseOut, ds); err != nil {
				logrus.Fatalf("Writing %s: %v", glucoseOut, err)
			}
			logrus.Infof("Wrote %d glucose rows to %s", len(ds.Glucose), glucoseOut)
		}
		if eventsOut != "" {
			if err := WriteEventsCSV(eventsOut, ds); err != nil {
				logrus.Fatalf("Writing %s: %v", eventsOut, err)
			}
			logrus.Infof("Wrote %d event rows to %s", len(ds.Events), eventsOut)
		}

		logrus.Infof("Generation complete in %s.", time.Since(startTime).Round(time.Millisecond))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for subject stream derivation")
	runCmd.Flags().IntVar(&subjects, "subjects", 30, "Number of simulated subjects")
	runCmd.Flags().IntVar(&days, "days", sim.DefaultDays, "Simulated days per subject")
	runCmd.Flags().Float64Var(&baseline, "baseline", sim.DefaultBaseline, "Fasting glucose baseline (mg/dL)")
	runCmd.Flags().Float64Var(&noiseStd, "noise-std", sim.DefaultNoiseStd, "Sensor noise std dev (currently unused by the noise model)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&presetFile, "preset-file", "cohorts.yaml", "YAML file with named cohort presets")
	runCmd.Flags().StringVar(&presetName, "preset", "", "Cohort preset to load (overrides subjects/days/baseline flags)")

	runCmd.Flags().StringVar(&glucoseOut, "glucose-out", "", "CSV path for the glucose table")
	runCmd.Flags().StringVar(&eventsOut, "events-out", "", "CSV path for the event log")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
