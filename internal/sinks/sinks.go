// Package sinks defines the consumers of prepared dashboard views.
package sinks

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/sportstats/internal/analytics"
)

// ChartSink draws chart series.
type ChartSink interface {
	RenderCharts(ctx context.Context, charts analytics.ChartSet) error
}

// MapSink places team markers.
type MapSink interface {
	RenderMap(ctx context.Context, view analytics.MapView) error
}

// ReportSink turns a report model into a document.
type ReportSink interface {
	RenderReport(ctx context.Context, report analytics.Report) error
}

// LogSink records a summary of every refresh.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink writing to logger.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) RenderCharts(_ context.Context, charts analytics.ChartSet) error {
	s.logger.Debug("charts refreshed",
		zap.Int("runs_points", len(charts.Runs)),
		zap.Int("win_rate_points", len(charts.WinRate)),
		zap.Int("radar_series", len(charts.Radar)))
	return nil
}

func (s *LogSink) RenderMap(_ context.Context, view analytics.MapView) error {
	s.logger.Debug("map refreshed", zap.Int("markers", len(view.Points)))
	return nil
}

func (s *LogSink) RenderReport(_ context.Context, report analytics.Report) error {
	s.logger.Info("report generated",
		zap.String("title", report.Title),
		zap.Int("teams", len(report.Lines)),
		zap.Time("generated_at", report.GeneratedAt))
	return nil
}
