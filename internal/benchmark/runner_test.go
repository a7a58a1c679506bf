package benchmark

import (
	"testing"
	"time"

	"fizzbench/internal/fizzbuzz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickingClock advances by step on every read.
func tickingClock(step time.Duration) func() time.Time {
	t := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestHarness_ShapeMatchesConfig(t *testing.T) {
	tests := []struct {
		name   string
		reg    *fizzbuzz.Registry
		rounds int
	}{
		{"default registry single round", fizzbuzz.Default(), 1},
		{"default registry many rounds", fizzbuzz.Default(), 5},
		{"zero rounds", fizzbuzz.Default(), 0},
		{"empty registry", fizzbuzz.NewRegistry(), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHarness(Config{Lower: 0, Upper: 100, Rounds: tt.rounds})
			run := h.Run(tt.reg)

			require.Len(t, run.Results, tt.reg.Len())
			assert.Equal(t, tt.reg.Names(), run.Names())
			assert.Equal(t, tt.rounds, run.Rounds)
			for _, res := range run.Results {
				assert.Len(t, res.Samples, tt.rounds)
				for _, s := range res.Samples {
					assert.GreaterOrEqual(t, s, time.Duration(0))
				}
			}
		})
	}
}

func TestHarness_UsesClockPerSweep(t *testing.T) {
	h := NewHarness(Config{Lower: 0, Upper: 10, Rounds: 2})
	h.now = tickingClock(time.Millisecond)

	run := h.Run(fizzbuzz.Default())
	for _, res := range run.Results {
		assert.Equal(t, []time.Duration{time.Millisecond, time.Millisecond}, res.Samples)
	}
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, int(time.Millisecond), time.UTC), run.Timestamp)
}

func TestHarness_SweepsRangeInOrder(t *testing.T) {
	var seen []uint64
	reg := fizzbuzz.NewRegistry(fizzbuzz.Candidate{Name: "recorder", Classify: func(n uint64) string {
		seen = append(seen, n)
		return ""
	}})

	run := NewHarness(Config{Lower: 3, Upper: 8, Rounds: 2}).Run(reg)

	assert.Equal(t, []uint64{3, 4, 5, 6, 7, 3, 4, 5, 6, 7}, seen)
	assert.Equal(t, uint64(3), run.Lower)
	assert.Equal(t, uint64(8), run.Upper)
}

func TestHarness_NotifiesObservers(t *testing.T) {
	type call struct {
		name  string
		round int
	}
	var calls []call
	obs := ObserverFunc(func(name string, round int, _ time.Duration) {
		calls = append(calls, call{name, round})
	})

	reg, err := fizzbuzz.Default().Select([]string{"brute_fizzbuzz", "cycle_fizzbuzz"})
	require.NoError(t, err)

	NewHarness(Config{Upper: 10, Rounds: 2}, obs).Run(reg)

	assert.Equal(t, []call{
		{"brute_fizzbuzz", 0}, {"brute_fizzbuzz", 1},
		{"cycle_fizzbuzz", 0}, {"cycle_fizzbuzz", 1},
	}, calls)
}

func TestHarness_EmptyRange(t *testing.T) {
	calls := 0
	reg := fizzbuzz.NewRegistry(fizzbuzz.Candidate{Name: "c", Classify: func(uint64) string {
		calls++
		return ""
	}})
	run := NewHarness(Config{Lower: 5, Upper: 5, Rounds: 3}).Run(reg)
	assert.Zero(t, calls)
	assert.Len(t, run.Results[0].Samples, 3)
}

func TestHarness_UpperBoundAtMax(t *testing.T) {
	const max = ^uint64(0)
	var seen []uint64
	reg := fizzbuzz.NewRegistry(fizzbuzz.Candidate{Name: "c", Classify: func(n uint64) string {
		seen = append(seen, n)
		return ""
	}})
	NewHarness(Config{Lower: max - 2, Upper: max, Rounds: 1}).Run(reg)
	assert.Equal(t, []uint64{max - 2, max - 1}, seen)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, Config{Lower: 1, Upper: 1, Rounds: 0}.Validate())

	err := Config{Lower: 10, Upper: 1, Rounds: -1}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lower bound 10 exceeds upper bound 1")
	assert.Contains(t, err.Error(), "rounds must not be negative")
}

func TestConfig_Inputs(t *testing.T) {
	assert.Equal(t, uint64(10_000_000), DefaultConfig().Inputs())
	assert.Equal(t, uint64(0), Config{Lower: 5, Upper: 1}.Inputs())
}
