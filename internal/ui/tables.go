package ui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"fizzbench/internal/benchmark"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...)
}

// RunTable shows the raw samples of a run with their spread.
func RunTable(run benchmark.Run) string {
	t := newTable("Candidate", "Samples", "Median", "Min", "Max").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			default:
				return cellStyle
			}
		})

	for _, res := range run.Results {
		s := benchmark.Summarize(res)
		if s.N == 0 {
			t.Row(res.Name, "0", "-", "-", "-")
			continue
		}
		t.Row(res.Name, strconv.Itoa(s.N), s.Center.String(),
			slices.Min(res.Samples).String(), slices.Max(res.Samples).String())
	}
	return t.String()
}

// SummaryTable shows the median and confidence interval per candidate.
func SummaryTable(sums []benchmark.Summary) string {
	t := newTable("Candidate", "N", "Median", fmt.Sprintf("%.0f%% CI", benchmark.Confidence*100), "Notes").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			default:
				return cellStyle
			}
		})

	for _, s := range sums {
		if s.N == 0 {
			t.Row(s.Name, "0", "-", "-", "no samples")
			continue
		}
		t.Row(s.Name, strconv.Itoa(s.N), s.Center.String(),
			fmt.Sprintf("%s .. %s", s.Lo, s.Hi), strings.Join(s.Warnings, "; "))
	}
	return t.String()
}

// ComparisonTable shows median movement between runs; changes beyond
// threshold percent are highlighted.
func ComparisonTable(comps []benchmark.Comparison, threshold float64) string {
	t := newTable("Candidate", "Previous", "Current", "Delta").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			case col == 3 && row < len(comps):
				if comps[row].Diff > threshold {
					return slowerStyle
				}
				if comps[row].Diff < -threshold {
					return fasterStyle
				}
			}
			return cellStyle
		})

	for _, c := range comps {
		t.Row(c.Name,
			time.Duration(c.PrevMedian).String(),
			time.Duration(c.CurrMedian).String(),
			fmt.Sprintf("%+.2f%%", c.Diff))
	}
	return t.String()
}

// HistoryTable lists saved runs, oldest first, numbering rows from first.
func HistoryTable(runs []benchmark.Run, first int) string {
	t := newTable("#", "Timestamp", "Commit", "Range", "Rounds", "Candidates").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, run := range runs {
		commit := run.Commit
		if commit == "" {
			commit = "-"
		}
		t.Row(strconv.Itoa(first+i),
			run.Timestamp.Format(time.RFC3339),
			commit,
			fmt.Sprintf("[%d, %d)", run.Lower, run.Upper),
			strconv.Itoa(run.Rounds),
			strconv.Itoa(len(run.Results)))
	}
	return t.String()
}
