package benchmark

import "time"

// Result holds the samples collected for one candidate, in round order.
type Result struct {
	Name    string          `json:"name"`
	Samples []time.Duration `json:"samples_ns"`
}

// Run represents the results of a single harness execution.
type Run struct {
	Timestamp time.Time `json:"timestamp"`
	Commit    string    `json:"commit,omitempty"` // Git commit hash
	Lower     uint64    `json:"lower"`
	Upper     uint64    `json:"upper"`
	Rounds    int       `json:"rounds"`
	Results   []Result  `json:"results"`
}

// Result returns the result for name, if present.
func (r Run) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

// Names returns candidate names in the order they ran.
func (r Run) Names() []string {
	names := make([]string, len(r.Results))
	for i, res := range r.Results {
		names[i] = res.Name
	}
	return names
}
