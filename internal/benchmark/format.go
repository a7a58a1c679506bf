package benchmark

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how a run is written.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied name to a Format. The empty string means
// "pick for me" and returns "" without error.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, csv or json)", ErrUnknownFormat, s)
	}
}

// DefaultFormat is text for a single measurement and csv for repeated samples.
func DefaultFormat(rounds int) Format {
	if rounds == 1 {
		return FormatText
	}
	return FormatCSV
}

// Write renders run to w in format f. An empty format picks DefaultFormat.
func Write(w io.Writer, run Run, f Format) error {
	if f == "" {
		f = DefaultFormat(run.Rounds)
	}
	switch f {
	case FormatText:
		return WriteText(w, run)
	case FormatCSV:
		return WriteCSV(w, run)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteText writes "<name> ran in <duration>" per candidate.
func WriteText(w io.Writer, run Run) error {
	bw := bufio.NewWriter(w)
	for _, res := range run.Results {
		durations := "-"
		if len(res.Samples) > 0 {
			parts := make([]string, len(res.Samples))
			for i, s := range res.Samples {
				parts[i] = s.String()
			}
			durations = strings.Join(parts, ", ")
		}
		fmt.Fprintf(bw, "%s ran in %s\n", res.Name, durations)
	}
	return bw.Flush()
}

// WriteCSV writes "<name>,<s1>,...,<sN>" per candidate with samples in
// seconds. Names never contain commas, so nothing is quoted and no header is
// emitted.
func WriteCSV(w io.Writer, run Run) error {
	bw := bufio.NewWriter(w)
	for _, res := range run.Results {
		bw.WriteString(res.Name)
		for _, s := range res.Samples {
			bw.WriteByte(',')
			bw.WriteString(FormatSeconds(s))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// FormatSeconds renders d as decimal seconds with the shortest exact form.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
