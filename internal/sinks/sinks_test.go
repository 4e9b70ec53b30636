package sinks

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/sportstats/internal/analytics"
	"github.com/spec-kit/sportstats/internal/domain"
)

func TestTextReportSink(t *testing.T) {
	var buf bytes.Buffer
	report := analytics.BuildReport(domain.DefaultSnapshot().Teams, time.Date(2024, 2, 3, 10, 20, 0, 0, time.UTC))

	require.NoError(t, NewTextReportSink(&buf).RenderReport(context.Background(), report))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "SportStats Analytics Report", lines[0])
	assert.Equal(t, "Generated on: 2024-02-03 10:20", lines[1])
	assert.Contains(t, buf.String(), "Team Statistics:")
	assert.Contains(t, buf.String(), "  Falcons: 18 matches, 66.7% win rate\n")
}

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	sink := NewLogSink(zap.New(core))
	dash := analytics.BuildDashboard(domain.DefaultSnapshot())

	var charts ChartSink = sink
	var maps MapSink = sink
	var reports ReportSink = sink
	require.NoError(t, charts.RenderCharts(context.Background(), dash.Charts))
	require.NoError(t, maps.RenderMap(context.Background(), dash.Map))
	require.NoError(t, reports.RenderReport(context.Background(), analytics.BuildReport(nil, time.Now())))

	require.Equal(t, 3, logs.Len())
	assert.Equal(t, "map refreshed", logs.All()[1].Message)
	assert.Equal(t, int64(3), logs.All()[1].ContextMap()["markers"])
}
