package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fizzbench/internal/config"
	"fizzbench/internal/ui"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a markdown report of the latest saved run",
		RunE:  runReport,
	}
	cmd.Flags().Bool("raw", false, "Print the markdown source instead of rendering it")
	cmd.Flags().StringP("output", "o", "", "Write the markdown source to this file")
	cmd.Flags().Int("width", 80, "Word wrap width for rendered output")
	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	settings := config.Current()
	run, err := latestRun(settings)
	if err != nil {
		return err
	}

	md := ui.MarkdownReport(run)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := os.WriteFile(output, []byte(md), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", output)
		return nil
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	width, _ := cmd.Flags().GetInt("width")
	rendered, err := ui.RenderMarkdown(md, settings.ReportStyle, width)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
