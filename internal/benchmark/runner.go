package benchmark

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fizzbench/internal/fizzbuzz"
)

// Default sweep parameters.
const (
	DefaultLower  uint64 = 0
	DefaultUpper  uint64 = 10_000_000
	DefaultRounds        = 1
)

// Config describes the input range [Lower, Upper) and how many sweeps to take
// per candidate.
type Config struct {
	Lower  uint64
	Upper  uint64
	Rounds int
}

func DefaultConfig() Config {
	return Config{Lower: DefaultLower, Upper: DefaultUpper, Rounds: DefaultRounds}
}

// Validate reports every problem with the configuration at once.
// Zero rounds is allowed and yields empty sample sequences.
func (c Config) Validate() error {
	var problems []string
	if c.Lower > c.Upper {
		problems = append(problems, fmt.Sprintf("lower bound %d exceeds upper bound %d", c.Lower, c.Upper))
	}
	if c.Rounds < 0 {
		problems = append(problems, fmt.Sprintf("rounds must not be negative, got: %d", c.Rounds))
	}
	if len(problems) > 0 {
		return errors.New("invalid benchmark config: " + strings.Join(problems, "; "))
	}
	return nil
}

// Inputs is the number of classifier calls in one sweep.
func (c Config) Inputs() uint64 {
	if c.Upper < c.Lower {
		return 0
	}
	return c.Upper - c.Lower
}

// Runner defines the interface for running benchmarks.
type Runner interface {
	Run(reg *fizzbuzz.Registry) Run
}

// Observer is notified after every sample, outside the timed region.
type Observer interface {
	OnSample(candidate string, round int, elapsed time.Duration)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(candidate string, round int, elapsed time.Duration)

func (f ObserverFunc) OnSample(candidate string, round int, elapsed time.Duration) {
	f(candidate, round, elapsed)
}

// Harness times candidates sequentially on the calling goroutine.
// Running sweeps concurrently would let them disturb each other's timings.
type Harness struct {
	cfg       Config
	now       func() time.Time
	observers []Observer
}

// NewHarness returns a harness for cfg using the wall clock.
func NewHarness(cfg Config, observers ...Observer) *Harness {
	return &Harness{cfg: cfg, now: time.Now, observers: observers}
}

// Run sweeps every candidate in registry order, Rounds times each.
// A panicking candidate aborts the whole run.
func (h *Harness) Run(reg *fizzbuzz.Registry) Run {
	run := Run{
		Timestamp: h.now(),
		Lower:     h.cfg.Lower,
		Upper:     h.cfg.Upper,
		Rounds:    h.cfg.Rounds,
		Results:   make([]Result, 0, reg.Len()),
	}

	for _, c := range reg.All() {
		res := Result{Name: c.Name, Samples: make([]time.Duration, 0, h.cfg.Rounds)}
		for round := 0; round < h.cfg.Rounds; round++ {
			elapsed := h.sweep(c.Classify)
			res.Samples = append(res.Samples, elapsed)
			for _, o := range h.observers {
				o.OnSample(c.Name, round, elapsed)
			}
		}
		run.Results = append(run.Results, res)
	}

	return run
}

func (h *Harness) sweep(fn fizzbuzz.Classifier) time.Duration {
	start := h.now()
	for n := h.cfg.Lower; n < h.cfg.Upper; n++ {
		sink = fn(n)
	}
	elapsed := h.now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}

// sink keeps classifier results observable so calls are not optimised away.
var sink string
