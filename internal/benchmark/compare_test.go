package benchmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	prev := Run{
		Results: []Result{
			{Name: "B1", Samples: []time.Duration{100, 100, 100}},
			{Name: "B2", Samples: []time.Duration{200}},
			{Name: "B4", Samples: nil},
		},
	}
	curr := Run{
		Results: []Result{
			{Name: "B1", Samples: []time.Duration{110, 110, 110}}, // 10% slower
			{Name: "B3", Samples: []time.Duration{300}},           // New
			{Name: "B4", Samples: []time.Duration{300}},           // Nothing to compare against
		},
	}

	comps, err := Compare(prev, curr)
	require.NoError(t, err)

	assert.Len(t, comps, 1) // Only B1 matches

	c := comps[0]
	assert.Equal(t, "B1", c.Name)
	assert.InDelta(t, 10.0, c.Diff, 0.01)
	assert.Equal(t, "B1: +10.00%", c.String())
}

func TestRegressions(t *testing.T) {
	comps := []Comparison{
		{Name: "faster", Diff: -20},
		{Name: "noise", Diff: 5},
		{Name: "slower", Diff: 25},
	}
	reg := Regressions(comps, 10)
	assert.Len(t, reg, 1)
	assert.Equal(t, "slower", reg[0].Name)
}

func TestCompare_DifferentRanges(t *testing.T) {
	prev := Run{Lower: 0, Upper: 50, Results: []Result{
		{Name: "brute_fizzbuzz", Samples: []time.Duration{2 * time.Microsecond}},
	}}
	curr := Run{Lower: 0, Upper: 10_000_000, Results: []Result{
		{Name: "brute_fizzbuzz", Samples: []time.Duration{400 * time.Millisecond}},
	}}

	comps, err := Compare(prev, curr)
	assert.ErrorIs(t, err, ErrIncomparableRuns)
	assert.Empty(t, comps)
	assert.Empty(t, Regressions(comps, 10))
	assert.Contains(t, err.Error(), "[0, 50)")
	assert.Contains(t, err.Error(), "[0, 10000000)")

	curr.Lower, curr.Upper = 10, 60
	_, err = Compare(prev, curr)
	assert.ErrorIs(t, err, ErrIncomparableRuns, "same width but shifted range")
}
