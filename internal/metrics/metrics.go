package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Recorder collects per-candidate sweep metrics on a private registry so a
// run can be exported without the Go runtime collectors.
type Recorder struct {
	registry *prometheus.Registry
	inputs   uint64

	SweepDuration *prometheus.HistogramVec
	LastSweep     *prometheus.GaugeVec
	Sweeps        *prometheus.CounterVec
	Inputs        prometheus.Counter
}

// NewRecorder creates and registers the sweep metrics. inputs is the number
// of classifier calls in one sweep.
func NewRecorder(inputs uint64) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		inputs:   inputs,
	}

	r.SweepDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fizzbench_sweep_duration_seconds",
			Help:    "Wall-clock duration of one sweep over the input range",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 16),
		},
		[]string{"candidate"},
	)

	r.LastSweep = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fizzbench_last_sweep_seconds",
			Help: "Duration of the most recent sweep",
		},
		[]string{"candidate"},
	)

	r.Sweeps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fizzbench_sweeps_total",
			Help: "Total number of completed sweeps",
		},
		[]string{"candidate"},
	)

	r.Inputs = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fizzbench_inputs_total",
			Help: "Total number of classifier invocations",
		},
	)

	r.registry.MustRegister(r.SweepDuration, r.LastSweep, r.Sweeps, r.Inputs)
	return r
}

// OnSample implements benchmark.Observer.
func (r *Recorder) OnSample(candidate string, _ int, elapsed time.Duration) {
	r.SweepDuration.WithLabelValues(candidate).Observe(elapsed.Seconds())
	r.LastSweep.WithLabelValues(candidate).Set(elapsed.Seconds())
	r.Sweeps.WithLabelValues(candidate).Inc()
	r.Inputs.Add(float64(r.inputs))
}

// Gatherer exposes the recorder's registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics in the text exposition format, suitable
// for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// Push sends the metrics to a Prometheus Pushgateway under job.
func (r *Recorder) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(r.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	return nil
}
