package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fizzbench/internal/benchmark"
	"fizzbench/internal/config"
	"fizzbench/internal/metrics"
	"fizzbench/internal/notify"
	"fizzbench/internal/telemetry"
	"fizzbench/internal/ui"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time every candidate over the input range",
		Long: `Run sweeps each registered candidate over [lower, upper) once per round,
in registry order, and prints the samples to stdout.

With one round the output is "<name> ran in <duration>"; with more it is
CSV, one line per candidate followed by the samples in seconds.`,
		RunE: runBenchmark,
	}

	cmd.Flags().IntP("rounds", "r", benchmark.DefaultRounds, "Samples to collect per candidate")
	cmd.Flags().Uint64("lower", benchmark.DefaultLower, "First input of the sweep (inclusive)")
	cmd.Flags().Uint64("upper", benchmark.DefaultUpper, "End of the sweep (exclusive)")
	cmd.Flags().StringP("format", "f", "", "Output format: text, csv or json (default: text for one round, csv otherwise)")
	cmd.Flags().Bool("save", false, "Save the run to the history store")
	cmd.Flags().Bool("compare", false, "Compare against the latest saved run")
	cmd.Flags().Float64("threshold", 0, "Percent slowdown counted as a regression (default from config)")
	cmd.Flags().Bool("fail-on-regression", false, "Exit non-zero when a candidate regressed beyond the threshold")
	cmd.Flags().Bool("notify", false, "Post a summary to Slack")
	cmd.Flags().String("metrics-textfile", "", "Write Prometheus metrics for the run to this file")
	cmd.Flags().String("pushgateway", "", "Push Prometheus metrics for the run to this gateway URL")

	return cmd
}

// runSettings overlays the command's explicitly set flags on the loaded config.
func runSettings(cmd *cobra.Command) (config.Settings, error) {
	s := config.Current()
	flags := cmd.Flags()

	if flags.Changed("rounds") {
		s.Benchmark.Rounds, _ = flags.GetInt("rounds")
	}
	if flags.Changed("lower") {
		s.Benchmark.Lower, _ = flags.GetUint64("lower")
	}
	if flags.Changed("upper") {
		s.Benchmark.Upper, _ = flags.GetUint64("upper")
	}
	if flags.Changed("format") {
		raw, _ := flags.GetString("format")
		f, err := benchmark.ParseFormat(raw)
		if err != nil {
			return s, err
		}
		s.Format = f
	}
	if flags.Changed("threshold") {
		s.Threshold, _ = flags.GetFloat64("threshold")
	}
	if flags.Changed("metrics-textfile") {
		s.Metrics.Textfile, _ = flags.GetString("metrics-textfile")
	}
	if flags.Changed("pushgateway") {
		s.Metrics.Pushgateway, _ = flags.GetString("pushgateway")
	}
	if flags.Changed("notify") {
		s.Slack.Enabled, _ = flags.GetBool("notify")
	}

	if err := s.Benchmark.Validate(); err != nil {
		return s, err
	}
	if s.Threshold < 0 {
		return s, fmt.Errorf("threshold must not be negative, got: %g", s.Threshold)
	}
	return s, nil
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	settings, err := runSettings(cmd)
	if err != nil {
		return err
	}
	save, _ := cmd.Flags().GetBool("save")
	compare, _ := cmd.Flags().GetBool("compare")
	failOnRegression, _ := cmd.Flags().GetBool("fail-on-regression")

	reg, err := selectedRegistry(settings)
	if err != nil {
		return err
	}

	observers := []benchmark.Observer{telemetry.SampleLogger{}}
	var recorder *metrics.Recorder
	if settings.Metrics.Textfile != "" || settings.Metrics.Pushgateway != "" {
		recorder = metrics.NewRecorder(settings.Benchmark.Inputs())
		observers = append(observers, recorder)
	}

	telemetry.LogInfo("starting benchmark",
		"candidates", reg.Len(),
		"lower", settings.Benchmark.Lower,
		"upper", settings.Benchmark.Upper,
		"rounds", settings.Benchmark.Rounds)

	runner := newRunnerFunc(settings.Benchmark, observers...)
	run := runner.Run(reg)
	if commit, err := gitCommitFunc(); err == nil {
		run.Commit = commit
	} else {
		telemetry.LogDebug("git commit unavailable", "error", err)
	}

	if err := benchmark.Write(cmd.OutOrStdout(), run, settings.Format); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	var regressions []benchmark.Comparison
	if save || compare {
		regressions, err = persistRun(cmd, settings, run, save, compare)
		if err != nil {
			return err
		}
	}

	if recorder != nil {
		exportMetrics(cmd.Context(), recorder, settings.Metrics)
	}

	if settings.Slack.Enabled {
		sendNotification(cmd.Context(), newNotifierFunc(settings.Slack), notify.RunSummary(run))
	}

	if failOnRegression && len(regressions) > 0 {
		return fmt.Errorf("performance regression detected: %s", regressions[0])
	}
	return nil
}

// persistRun compares run with the latest saved run before saving it, so the
// comparison never sees the run itself.
func persistRun(cmd *cobra.Command, settings config.Settings, run benchmark.Run, save, compare bool) ([]benchmark.Comparison, error) {
	store, err := newStoreFunc(settings.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	var regressions []benchmark.Comparison
	if compare {
		prev, err := store.LoadLatest()
		switch {
		case err != nil:
			return nil, fmt.Errorf("failed to load previous run: %w", err)
		case prev == nil:
			fmt.Fprintln(cmd.ErrOrStderr(), "No previous run to compare against.")
		default:
			comps, err := benchmark.Compare(*prev, run)
			if errors.Is(err, benchmark.ErrIncomparableRuns) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Skipping comparison: %v\n", err)
				break
			}
			ui.ConfigureColor(cmd.ErrOrStderr())
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Title("Comparison with previous run"))
			fmt.Fprintln(cmd.ErrOrStderr(), ui.ComparisonTable(comps, settings.Threshold))
			regressions = benchmark.Regressions(comps, settings.Threshold)
		}
	}

	if save {
		if err := store.Save(run); err != nil {
			return nil, fmt.Errorf("failed to save run: %w", err)
		}
		telemetry.LogInfof("saved run with %d candidates", len(run.Results))
	}
	return regressions, nil
}

// exportMetrics never fails the run; the samples are already on stdout.
func exportMetrics(ctx context.Context, recorder *metrics.Recorder, s config.MetricsSettings) {
	if s.Textfile != "" {
		if err := recorder.WriteTextfile(s.Textfile); err != nil {
			telemetry.LogError("failed to write metrics textfile", err, "path", s.Textfile)
		}
	}
	if s.Pushgateway != "" {
		if ctx == nil {
			ctx = context.Background()
		}
		if err := recorder.Push(ctx, s.Pushgateway, s.Job); err != nil {
			telemetry.LogError("failed to push metrics", err, "url", s.Pushgateway)
		}
	}
}

func sendNotification(ctx context.Context, n notify.Notifier, message string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := n.Notify(ctx, message); err != nil {
		telemetry.LogError("failed to send notification", err)
		return
	}
	telemetry.LogDebug("notification sent")
}
