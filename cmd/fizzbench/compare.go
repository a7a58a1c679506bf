package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fizzbench/internal/benchmark"
	"fizzbench/internal/config"
	"fizzbench/internal/ui"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the two most recent saved runs",
		RunE:  runCompare,
	}
	cmd.Flags().Float64("threshold", 0, "Percent slowdown counted as a regression (default from config)")
	cmd.Flags().Bool("fail-on-regression", false, "Exit non-zero when a candidate regressed beyond the threshold")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	settings := config.Current()
	if cmd.Flags().Changed("threshold") {
		settings.Threshold, _ = cmd.Flags().GetFloat64("threshold")
	}
	failOnRegression, _ := cmd.Flags().GetBool("fail-on-regression")

	store, err := newStoreFunc(settings.Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	prev, curr, err := benchmark.LastTwo(store)
	if err != nil {
		return err
	}

	comps, err := benchmark.Compare(prev, curr)
	if errors.Is(err, benchmark.ErrIncomparableRuns) {
		fmt.Fprintf(cmd.OutOrStdout(), "Skipping comparison: %v\n", err)
		return nil
	}
	if len(comps) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No candidates in common between the last two runs.")
		return nil
	}

	ui.ConfigureColor(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), ui.ComparisonTable(comps, settings.Threshold))

	if regressions := benchmark.Regressions(comps, settings.Threshold); failOnRegression && len(regressions) > 0 {
		return fmt.Errorf("performance regression detected: %s", regressions[0])
	}
	return nil
}
