package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fizzbench/internal/benchmark"
	"fizzbench/internal/config"
	"fizzbench/internal/ui"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show medians and confidence intervals of the latest saved run",
		RunE:  runSummary,
	}
}

// latestRun loads the most recent saved run or reports ErrNoRuns.
func latestRun(settings config.Settings) (benchmark.Run, error) {
	store, err := newStoreFunc(settings.Store)
	if err != nil {
		return benchmark.Run{}, fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	run, err := store.LoadLatest()
	if err != nil {
		return benchmark.Run{}, fmt.Errorf("failed to load latest run: %w", err)
	}
	if run == nil {
		return benchmark.Run{}, benchmark.ErrNoRuns
	}
	return *run, nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	run, err := latestRun(config.Current())
	if err != nil {
		return err
	}

	ui.ConfigureColor(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), ui.SummaryTable(benchmark.SummarizeRun(run)))
	return nil
}
