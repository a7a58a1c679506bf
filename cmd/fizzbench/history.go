package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fizzbench/internal/config"
	"fizzbench/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved runs, oldest first",
		RunE:  runHistory,
	}
	cmd.Flags().IntP("limit", "n", 0, "Show only the most recent N runs (0 for all)")
	cmd.Flags().Int("show", 0, "Show the samples of run # from the listing (1 is the oldest)")
	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return fmt.Errorf("limit must not be negative, got: %d", limit)
	}
	show, _ := cmd.Flags().GetInt("show")
	if show < 0 {
		return fmt.Errorf("show must not be negative, got: %d", show)
	}

	store, err := newStoreFunc(config.Current().Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	runs, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
		return nil
	}

	ui.ConfigureColor(cmd.OutOrStdout())

	if show > 0 {
		if show > len(runs) {
			return fmt.Errorf("run #%d does not exist, have %d runs", show, len(runs))
		}
		run := runs[show-1]
		fmt.Fprintln(cmd.OutOrStdout(), ui.Title(fmt.Sprintf("Run #%d at %s", show, run.Timestamp.Format(time.RFC3339))))
		fmt.Fprintln(cmd.OutOrStdout(), ui.RunTable(run))
		return nil
	}

	first := 1
	if limit > 0 && len(runs) > limit {
		first = len(runs) - limit + 1
		runs = runs[len(runs)-limit:]
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.HistoryTable(runs, first))
	return nil
}
