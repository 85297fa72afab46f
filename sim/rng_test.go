package sim

import (
	"math"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// Same key+name produces same sequence
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	vals1 := make([]float64, 3)
	vals2 := make([]float64, 3)

	for i := 0; i < 3; i++ {
		vals1[i] = rng1.ForSubsystem(SubsystemSubject(0)).Float64()
	}
	for i := 0; i < 3; i++ {
		vals2[i] = rng2.ForSubsystem(SubsystemSubject(0)).Float64()
	}

	for i := 0; i < 3; i++ {
		if vals1[i] != vals2[i] {
			t.Errorf("Value %d: got %v and %v, want identical", i, vals1[i], vals2[i])
		}
	}
}

func TestPartitionedRNG_SubjectIsolation(t *testing.T) {
	// Drawing from subject 0's stream doesn't affect subject 1's
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	rngB := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemSubject(0)).Float64()
	}

	vals1 := make([]float64, 5)
	vals2 := make([]float64, 5)
	for i := 0; i < 5; i++ {
		vals1[i] = rngA.ForSubsystem(SubsystemSubject(1)).Float64()
	}
	for i := 0; i < 5; i++ {
		vals2[i] = rngB.ForSubsystem(SubsystemSubject(1)).Float64()
	}

	for i := 0; i < 5; i++ {
		if vals1[i] != vals2[i] {
			t.Errorf("Value %d: got %v and %v, want identical despite other-subject draws", i, vals1[i], vals2[i])
		}
	}
}

func TestPartitionedRNG_CachedInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(7))
	a := rng.ForSubsystem(SubsystemSubject(3))
	b := rng.ForSubsystem(SubsystemSubject(3))
	if a != b {
		t.Error("ForSubsystem returned different instances for the same name")
	}
	if rng.Key() != NewSimulationKey(7) {
		t.Errorf("Key() = %d, want 7", rng.Key())
	}
}
