package fizzbuzz

import (
	"errors"
	"fmt"
)

// ErrUnknownCandidate is returned when a requested candidate is not registered.
var ErrUnknownCandidate = errors.New("unknown candidate")

// Classifier maps a number to its FizzBuzz label.
type Classifier func(n uint64) string

// Candidate pairs a display name with the classifier under test.
type Candidate struct {
	Name     string
	Classify Classifier
}

// Registry is a fixed, ordered list of candidates.
type Registry struct {
	candidates []Candidate
}

// NewRegistry returns a registry holding cands in the given order.
func NewRegistry(cands ...Candidate) *Registry {
	return &Registry{candidates: append([]Candidate(nil), cands...)}
}

// Default returns the built-in candidates in benchmark order.
func Default() *Registry {
	return NewRegistry(
		Candidate{Name: "brute_fizzbuzz", Classify: Brute},
		Candidate{Name: "accumulate_fizzbuzz", Classify: Accumulate},
		Candidate{Name: "compositional_fizzbuzz", Classify: Compositional},
		Candidate{Name: "switch_fizzbuzz", Classify: Switch},
		Candidate{Name: "cycle_fizzbuzz", Classify: Cycle},
		Candidate{Name: "bytes_fizzbuzz", Classify: Bytes},
	)
}

// All returns a copy of the candidates in registry order.
func (r *Registry) All() []Candidate {
	return append([]Candidate(nil), r.candidates...)
}

func (r *Registry) Len() int {
	return len(r.candidates)
}

// Names returns the candidate names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.candidates))
	for i, c := range r.candidates {
		names[i] = c.Name
	}
	return names
}

// Select returns a registry restricted to names, keeping registry order.
// An empty selection returns r itself.
func (r *Registry) Select(names []string) (*Registry, error) {
	if len(names) == 0 {
		return r, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var picked []Candidate
	for _, c := range r.candidates {
		if wanted[c.Name] {
			picked = append(picked, c)
			delete(wanted, c.Name)
		}
	}

	for _, n := range names {
		if wanted[n] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCandidate, n)
		}
	}

	return NewRegistry(picked...), nil
}

// Mismatch records an input on which a candidate disagrees with Reference.
type Mismatch struct {
	Candidate string
	Input     uint64
	Got       string
	Want      string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s(%d) = %q, want %q", m.Candidate, m.Input, m.Got, m.Want)
}

// Verify checks every candidate against Reference over [lower, upper).
// Agreement with the reference implies pairwise agreement between candidates.
func (r *Registry) Verify(lower, upper uint64) []Mismatch {
	var mismatches []Mismatch
	for _, c := range r.candidates {
		for n := lower; n < upper; n++ {
			got, want := c.Classify(n), Reference(n)
			if got != want {
				mismatches = append(mismatches, Mismatch{Candidate: c.Name, Input: n, Got: got, Want: want})
			}
		}
	}
	return mismatches
}
