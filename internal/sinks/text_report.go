package sinks

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spec-kit/sportstats/internal/analytics"
)

// TextReportSink writes reports as plain text.
type TextReportSink struct {
	w io.Writer
}

// NewTextReportSink creates a sink writing to w.
func NewTextReportSink(w io.Writer) *TextReportSink {
	return &TextReportSink{w: w}
}

func (s *TextReportSink) RenderReport(_ context.Context, report analytics.Report) error {
	return WriteTextReport(s.w, report)
}

// WriteTextReport renders report line by line.
func WriteTextReport(w io.Writer, report analytics.Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, report.Title)
	fmt.Fprintln(bw, report.GeneratedLabel())
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Teams: %d  Matches: %d  Runs: %d  Avg win rate: %.1f%%\n",
		report.Aggregates.Count,
		report.Aggregates.TotalMatches,
		report.Aggregates.TotalRuns,
		report.Aggregates.AvgWinRate)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Team Statistics:")
	for _, line := range report.Lines {
		fmt.Fprintf(bw, "  %s\n", line)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
