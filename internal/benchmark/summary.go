package benchmark

import (
	"math"
	"time"

	"golang.org/x/perf/benchmath"
)

// Confidence is the confidence level used for summary intervals.
const Confidence = 0.95

// Summary describes the distribution of one candidate's samples.
type Summary struct {
	Name   string
	N      int
	Center time.Duration // median
	Lo     time.Duration
	Hi     time.Duration
	// Warnings carries benchmath's notes, e.g. too few samples for the interval.
	Warnings []string
}

// Summarize computes the median and a distribution-free confidence interval
// for res. A result without samples summarizes to zeros.
func Summarize(res Result) Summary {
	s := Summary{Name: res.Name, N: len(res.Samples)}
	if s.N == 0 {
		return s
	}

	values := make([]float64, len(res.Samples))
	for i, d := range res.Samples {
		values[i] = float64(d)
	}

	sample := benchmath.NewSample(values, &benchmath.DefaultThresholds)
	sum := benchmath.AssumeNothing.Summary(sample, Confidence)

	s.Center = toDuration(sum.Center)
	s.Lo = toDuration(sum.Lo)
	s.Hi = toDuration(sum.Hi)
	for _, w := range sum.Warnings {
		s.Warnings = append(s.Warnings, w.Error())
	}
	return s
}

// SummarizeRun summarizes every result of run in order.
func SummarizeRun(run Run) []Summary {
	out := make([]Summary, len(run.Results))
	for i, res := range run.Results {
		out[i] = Summarize(res)
	}
	return out
}

func toDuration(ns float64) time.Duration {
	switch {
	case math.IsNaN(ns), math.IsInf(ns, -1):
		return 0
	case math.IsInf(ns, 1):
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(math.Round(ns))
}
