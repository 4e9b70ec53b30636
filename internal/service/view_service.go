package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/sportstats/internal/analytics"
	"github.com/spec-kit/sportstats/internal/events"
	"github.com/spec-kit/sportstats/internal/repository"
	"github.com/spec-kit/sportstats/internal/sinks"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// ViewService computes derived views and pushes them to sinks.
type ViewService struct {
	store      repository.StatsStore
	dispatcher events.Dispatcher
	charts     sinks.ChartSink
	maps       sinks.MapSink
	reports    sinks.ReportSink
	logger     *zap.Logger
	now        func() time.Time
}

// ViewDependencies bundles collaborators for the view service.
type ViewDependencies struct {
	Store      repository.StatsStore
	Dispatcher events.Dispatcher
	Charts     sinks.ChartSink
	Maps       sinks.MapSink
	Reports    sinks.ReportSink
	Logger     *zap.Logger
	Clock      func() time.Time
}

// NewViewService constructs the service. Nil sinks are skipped.
func NewViewService(deps ViewDependencies) *ViewService {
	svc := &ViewService{
		store:      deps.Store,
		dispatcher: deps.Dispatcher,
		charts:     deps.Charts,
		maps:       deps.Maps,
		reports:    deps.Reports,
		logger:     deps.Logger,
		now:        deps.Clock,
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

// RegisterHandlers refreshes sinks after every data change.
func (v *ViewService) RegisterHandlers() {
	if v.dispatcher == nil {
		return
	}
	v.dispatcher.SubscribeAll(func(ctx context.Context, _ events.Event) error {
		return v.Refresh(ctx)
	}, events.DataEvents...)
}

// Refresh recomputes the charts and map and hands them to the sinks.
func (v *ViewService) Refresh(ctx context.Context) error {
	teams := v.store.Snapshot().Teams
	var errs []error
	if v.charts != nil {
		if err := v.charts.RenderCharts(ctx, analytics.Charts(teams)); err != nil {
			errs = append(errs, fmt.Errorf("render charts: %w", err))
		}
	}
	if v.maps != nil {
		if err := v.maps.RenderMap(ctx, analytics.Map(teams)); err != nil {
			errs = append(errs, fmt.Errorf("render map: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Dashboard computes every view from the current snapshot.
func (v *ViewService) Dashboard(_ context.Context) analytics.Dashboard {
	return analytics.BuildDashboard(v.store.Snapshot())
}

// Summary computes the header cards.
func (v *ViewService) Summary(_ context.Context) analytics.Summary {
	return analytics.Summarize(v.store.Snapshot())
}

// Options lists the selector values.
func (v *ViewService) Options(_ context.Context) analytics.FilterOptions {
	return analytics.Options(v.store.Snapshot())
}

// RunsChart returns total runs per team.
func (v *ViewService) RunsChart(_ context.Context) []analytics.Point {
	return analytics.RunsSeries(v.store.Snapshot().Teams)
}

// WinRateChart returns win rate per team.
func (v *ViewService) WinRateChart(_ context.Context) []analytics.Point {
	return analytics.WinRateSeries(v.store.Snapshot().Teams)
}

// RadarChart returns normalized metrics per team.
func (v *ViewService) RadarChart(_ context.Context) []analytics.RadarEntry {
	return analytics.RadarSeries(v.store.Snapshot().Teams)
}

// Compare lines up two teams. Both names must be given and exist.
func (v *ViewService) Compare(_ context.Context, team1, team2 string) (analytics.ComparisonChart, error) {
	if team1 == "" || team2 == "" {
		return analytics.ComparisonChart{}, apperrors.NewValidationError("team1 and team2 are required", nil)
	}
	a, ok := v.store.FindTeam(team1)
	if !ok {
		return analytics.ComparisonChart{}, apperrors.NewNotFound("team", map[string]any{"name": team1})
	}
	b, ok := v.store.FindTeam(team2)
	if !ok {
		return analytics.ComparisonChart{}, apperrors.NewNotFound("team", map[string]any{"name": team2})
	}
	return analytics.Comparison(a, b), nil
}

// Map returns team markers and the default viewport.
func (v *ViewService) Map(_ context.Context) analytics.MapView {
	return analytics.Map(v.store.Snapshot().Teams)
}

// Report builds the report model and hands it to the report sink.
func (v *ViewService) Report(ctx context.Context) analytics.Report {
	report := analytics.BuildReport(v.store.Snapshot().Teams, v.now())
	if v.reports != nil {
		if err := v.reports.RenderReport(ctx, report); err != nil {
			v.logger.Warn("report sink failed", zap.Error(err))
		}
	}
	return report
}
