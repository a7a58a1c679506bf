package benchmark

import (
	"errors"
	"fmt"
)

// ErrIncomparableRuns is returned by Compare when the runs swept different
// input ranges, so their durations measure different amounts of work.
var ErrIncomparableRuns = errors.New("runs are not comparable")

// Comparison describes how one candidate's median moved between two runs.
type Comparison struct {
	Name       string
	PrevMedian float64 // nanoseconds
	CurrMedian float64 // nanoseconds
	Diff       float64 // Percentage change
}

// Compare runs comparison between two runs.
// It returns a comparison for every candidate with samples in both runs, in
// the order of curr. Both runs must cover the same input range.
func Compare(prev, curr Run) ([]Comparison, error) {
	if prev.Lower != curr.Lower || prev.Upper != curr.Upper {
		return nil, fmt.Errorf("%w: previous run swept [%d, %d), current run swept [%d, %d)",
			ErrIncomparableRuns, prev.Lower, prev.Upper, curr.Lower, curr.Upper)
	}

	prevMap := make(map[string]Result)
	for _, r := range prev.Results {
		prevMap[r.Name] = r
	}

	var comparisons []Comparison
	for _, c := range curr.Results {
		p, ok := prevMap[c.Name]
		if !ok || len(p.Samples) == 0 || len(c.Samples) == 0 {
			continue
		}

		comp := Comparison{
			Name:       c.Name,
			PrevMedian: float64(Summarize(p).Center),
			CurrMedian: float64(Summarize(c).Center),
		}
		if comp.PrevMedian > 0 {
			comp.Diff = (comp.CurrMedian - comp.PrevMedian) / comp.PrevMedian * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons, nil
}

// Regressions returns the comparisons that got slower by more than threshold percent.
func Regressions(comps []Comparison, threshold float64) []Comparison {
	var out []Comparison
	for _, c := range comps {
		if c.Diff > threshold {
			out = append(out, c)
		}
	}
	return out
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %+.2f%%", c.Name, c.Diff)
}
