package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cgm-sim/cgm-sim/sim/cohort"
)

// Define struct for YAML
type PresetConfig struct {
	Presets map[string]Preset `yaml:"presets"`
}

type Preset struct {
	Subjects int     `yaml:"subjects"`
	Days     int     `yaml:"days"`
	Baseline float64 `yaml:"baseline"`
	NoiseStd float64 `yaml:"noise_std"`
}

// GetCohortPreset loads a named cohort preset from a YAML file and returns
// it as a cohort.Spec (without a seed). Returns nil if the preset name is
// not present in the file.
func GetCohortPreset(presetFilePath string, presetName string) *cohort.Spec {
	// Read YAML file
	data, err := os.ReadFile(presetFilePath)
	if err != nil {
		logrus.Fatalf("unable to read preset file %s: %v", presetFilePath, err)
	}

	// Parse YAML
	var cfg PresetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logrus.Fatalf("unable to parse preset file %s: %v", presetFilePath, err)
	}

	if preset, presetExists := cfg.Presets[presetName]; presetExists {
		logrus.Infof("Using cohort preset %v\n", presetName)
		return &cohort.Spec{
			Subjects: preset.Subjects,
			Days:     preset.Days,
			Baseline: preset.Baseline,
			NoiseStd: preset.NoiseStd,
		}
	}
	return nil
}
