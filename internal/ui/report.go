package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"fizzbench/internal/benchmark"
)

// MarkdownReport describes run as a markdown document with one summary row
// per candidate followed by the raw samples.
func MarkdownReport(run benchmark.Run) string {
	var b strings.Builder

	b.WriteString("# fizzbench report\n\n")
	fmt.Fprintf(&b, "- **Recorded:** %s\n", run.Timestamp.Format(time.RFC3339))
	if run.Commit != "" {
		fmt.Fprintf(&b, "- **Commit:** `%s`\n", run.Commit)
	}
	fmt.Fprintf(&b, "- **Inputs:** [%d, %d)\n", run.Lower, run.Upper)
	fmt.Fprintf(&b, "- **Rounds:** %d\n\n", run.Rounds)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Candidate | N | Median | Low | High |\n")
	b.WriteString("|---|---:|---:|---:|---:|\n")
	for _, s := range benchmark.SummarizeRun(run) {
		if s.N == 0 {
			fmt.Fprintf(&b, "| `%s` | 0 | - | - | - |\n", s.Name)
			continue
		}
		fmt.Fprintf(&b, "| `%s` | %d | %s | %s | %s |\n", s.Name, s.N, s.Center, s.Lo, s.Hi)
	}

	b.WriteString("\n## Samples (seconds)\n\n```csv\n")
	benchmark.WriteCSV(&b, run)
	b.WriteString("```\n")

	return b.String()
}

// RenderMarkdown renders md for the terminal. style "auto" follows the
// terminal background; any other value names a glamour standard style.
func RenderMarkdown(md, style string, width int) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(md)
}
