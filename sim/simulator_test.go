package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortConfig(days int) SubjectConfig {
	cfg := DefaultSubjectConfig()
	cfg.Days = days
	return cfg
}

func TestSimulate_SameSeedIdenticalResults(t *testing.T) {
	cfg := shortConfig(3)

	table1, log1, err := Simulate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	table2, log2, err := Simulate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, table1, table2, "glucose tables must be bit-identical")
	require.Equal(t, log1, log2, "event logs must be bit-identical")
}

func TestSimulate_DifferentSeedsDiverge(t *testing.T) {
	cfg := shortConfig(1)

	table1, _, err := Simulate(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	table2, _, err := Simulate(cfg, rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	assert.NotEqual(t, table1, table2)
}

func TestSimulate_RowCount(t *testing.T) {
	for _, days := range []int{1, 2, 7} {
		cfg := shortConfig(days)
		table, _, err := Simulate(cfg, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		assert.Len(t, table, days*minutesPerDay/sampleStride, "days=%d", days)
	}
}

func TestSimulate_EventTimesWithinRun(t *testing.T) {
	cfg := shortConfig(5)
	_, log, err := Simulate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.NotEmpty(t, log)

	for _, e := range log {
		assert.GreaterOrEqual(t, e.TimeMin, 0)
		assert.Less(t, e.TimeMin, cfg.Days*minutesPerDay)
	}
}

func TestSimulate_TimestampsAdvanceByFiveMinutes(t *testing.T) {
	cfg := shortConfig(1)
	table, _, err := Simulate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	for i := 1; i < len(table); i++ {
		assert.Equal(t, table[i-1].TimeMin+sampleStride, table[i].TimeMin)
		assert.True(t, table[i].Timestamp.After(table[i-1].Timestamp))
	}
}

func TestSimulate_InvalidDays(t *testing.T) {
	for _, days := range []int{0, -1} {
		cfg := shortConfig(days)
		_, _, err := Simulate(cfg, rand.New(rand.NewSource(42)))
		require.Error(t, err, "days=%d", days)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	}
}

func TestSubjectConfig_ValidateSchedulerShape(t *testing.T) {
	cfg := DefaultSubjectConfig()
	cfg.Scheduler.MealCarbs = cfg.Scheduler.MealCarbs[:1] // length mismatch
	_, _, err := Simulate(cfg, rand.New(rand.NewSource(42)))
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	cfg = DefaultSubjectConfig()
	cfg.Scheduler.MildHypoProb = 1.5
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalidArgument))
}
