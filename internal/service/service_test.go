package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/sportstats/internal/analytics"
	"github.com/spec-kit/sportstats/internal/auth"
	"github.com/spec-kit/sportstats/internal/config"
	"github.com/spec-kit/sportstats/internal/domain"
	"github.com/spec-kit/sportstats/internal/events"
	"github.com/spec-kit/sportstats/internal/persistence"
	"github.com/spec-kit/sportstats/internal/repository"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

var fixedNow = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

type recordingSink struct {
	charts  []analytics.ChartSet
	maps    []analytics.MapView
	reports []analytics.Report
	err     error
}

func (r *recordingSink) RenderCharts(_ context.Context, charts analytics.ChartSet) error {
	r.charts = append(r.charts, charts)
	return r.err
}

func (r *recordingSink) RenderMap(_ context.Context, view analytics.MapView) error {
	r.maps = append(r.maps, view)
	return nil
}

func (r *recordingSink) RenderReport(_ context.Context, report analytics.Report) error {
	r.reports = append(r.reports, report)
	return nil
}

type harness struct {
	blobs   *persistence.MemoryBlobStore
	adapter *persistence.Adapter
	store   repository.StatsStore
	stats   *StatsService
	views   *ViewService
	prefs   *PreferencesService
	sync    *SyncService
	sink    *recordingSink
}

func newHarness(t *testing.T, seed bool) *harness {
	t.Helper()
	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()
	blobs := persistence.NewMemoryBlobStore()
	adapter := persistence.NewAdapter(blobs, "", logger)
	store := repository.NewStatsStore(domain.Snapshot{})
	sink := &recordingSink{}
	clock := func() time.Time { return fixedNow }

	h := &harness{
		blobs:   blobs,
		adapter: adapter,
		store:   store,
		sink:    sink,
		stats:   NewStatsService(StatsDependencies{Store: store, Dispatcher: dispatcher, Logger: logger, Clock: clock}),
		views: NewViewService(ViewDependencies{
			Store: store, Dispatcher: dispatcher, Charts: sink, Maps: sink, Reports: sink, Logger: logger, Clock: clock,
		}),
		prefs: NewPreferencesService(adapter, dispatcher, logger),
		sync: NewSyncService(SyncDependencies{
			Store: store, Adapter: adapter, Dispatcher: dispatcher, Logger: logger, SeedDefaults: seed,
		}),
	}
	h.sync.RegisterHandlers()
	h.views.RegisterHandlers()
	h.sync.Restore(context.Background())
	return h
}

func TestRestoreSeedsWhenNothingStored(t *testing.T) {
	h := newHarness(t, true)
	assert.Equal(t, domain.DefaultSnapshot(), h.store.Snapshot())

	empty := newHarness(t, false)
	assert.Empty(t, empty.store.Snapshot().Teams)
}

func TestRestoreKeepsDefaultForMissingCollection(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	require.NoError(t, h.blobs.Set(ctx, "sportstats_teams", `[{"name":"Only","matches":1,"wins":1}]`))

	h.sync.Restore(ctx)
	snap := h.store.Snapshot()
	require.Len(t, snap.Teams, 1)
	assert.Equal(t, "Only", snap.Teams[0].Name)
	assert.Len(t, snap.Players, 6)
}

func TestRestoreIgnoresCorruptData(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	require.NoError(t, h.blobs.Set(ctx, "sportstats_players", `oops`))

	h.sync.Restore(ctx)
	assert.Equal(t, domain.DefaultSnapshot(), h.store.Snapshot())
}

func TestCreateTeamAppliesDefaultsAndPersists(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	team, err := h.stats.CreateTeam(ctx, domain.Team{Name: "  Eagles ", Matches: 4, Wins: 3, Losses: 1})
	require.NoError(t, err)
	assert.Equal(t, "Eagles", team.Name)
	assert.Equal(t, DefaultSquadSize, team.Players)
	assert.Equal(t, 2025, team.Founded)
	assert.Equal(t, DefaultCaptain, team.Captain)

	raw, ok, err := h.blobs.Get(ctx, "sportstats_teams")
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []domain.Team
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.Len(t, persisted, 4)
	assert.Equal(t, "Eagles", persisted[3].Name)

	require.Len(t, h.sink.charts, 1)
	assert.Len(t, h.sink.charts[0].Runs, 4)
	require.Len(t, h.sink.maps, 1)
	assert.Len(t, h.sink.maps[0].Points, 3)
}

func TestCreateTeamFailureDoesNotPublish(t *testing.T) {
	h := newHarness(t, true)
	_, err := h.stats.CreateTeam(context.Background(), domain.Team{Name: "TITANS"})
	assert.True(t, apperrors.HasCode(err, apperrors.CodeDuplicateName))

	_, ok, _ := h.blobs.Get(context.Background(), "sportstats_teams")
	assert.False(t, ok)
	assert.Empty(t, h.sink.charts)
}

func TestPlayerWorkflow(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	_, err := h.stats.CreatePlayer(ctx, domain.Player{Name: "Sam Lee", Team: "Eagles", Matches: 2, Runs: 60, Average: 30})
	require.NoError(t, err)
	assert.Len(t, h.stats.ListPlayers(ctx, "Eagles"), 1)
	assert.Len(t, h.stats.ListPlayers(ctx, "all"), 7)

	runs := 75
	updated, err := h.stats.UpdatePlayer(ctx, "sam lee", domain.PartialPlayer{Runs: &runs})
	require.NoError(t, err)
	assert.Equal(t, 75, updated.Runs)

	_, err = h.stats.GetPlayer(ctx, "nobody")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestAddSampleDataIsIdempotent(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	added, err := h.stats.AddSampleData(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Eagles"}, added)

	added, err = h.stats.AddSampleData(ctx)
	require.NoError(t, err)
	assert.Empty(t, added)
	assert.Len(t, h.store.Snapshot().Teams, 4)
	assert.Len(t, h.sink.charts, 1)
}

func TestImportMergesAndReportsSkipped(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	result, err := h.stats.Import(ctx, []byte(`{
		"teams": [{"name": "titans", "wins": 11}, {"name": "Sharks", "matches": 2}, {"matches": 9}],
		"players": [{"name": "New Kid", "team": "Sharks", "runs": 12}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, repository.MergeStats{Added: 1, Updated: 1}, result.Teams)
	assert.Equal(t, repository.MergeStats{Added: 1}, result.Players)
	assert.Equal(t, 1, result.Skipped)

	titans, err := h.stats.GetTeam(ctx, "Titans")
	require.NoError(t, err)
	assert.Equal(t, 11, titans.Wins)
	assert.Equal(t, 1250, titans.TotalRuns)

	loaded, ok := h.adapter.Load(ctx)
	require.True(t, ok)
	assert.Len(t, loaded.Teams, 4)
	assert.Len(t, loaded.Players, 7)
}

func TestImportParseErrorLeavesStoreUnchanged(t *testing.T) {
	h := newHarness(t, true)
	before := h.store.Snapshot()

	_, err := h.stats.Import(context.Background(), []byte("definitely not json"))
	assert.True(t, apperrors.HasCode(err, apperrors.CodeParseError))
	assert.Equal(t, before, h.store.Snapshot())
	assert.Empty(t, h.sink.charts)
}

func TestExportThenImportIntoEmptyStore(t *testing.T) {
	source := newHarness(t, true)
	doc, filename := source.stats.Export(context.Background())
	assert.Equal(t, "sports_data_export_2025-03-14.json", filename)
	encoded, err := doc.Encode()
	require.NoError(t, err)

	target := newHarness(t, false)
	_, err = target.stats.Import(context.Background(), encoded)
	require.NoError(t, err)
	assert.Equal(t, source.store.Snapshot(), target.store.Snapshot())
}

func TestViewServiceCompare(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	chart, err := h.views.Compare(ctx, "titans", "Falcons")
	require.NoError(t, err)
	assert.Equal(t, "Titans", chart.Series[0].Team)

	_, err = h.views.Compare(ctx, "Titans", "")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))
	_, err = h.views.Compare(ctx, "Titans", "Ghosts")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestViewServiceReportGoesToSink(t *testing.T) {
	h := newHarness(t, true)
	report := h.views.Report(context.Background())
	assert.Equal(t, fixedNow, report.GeneratedAt)
	require.Len(t, h.sink.reports, 1)
	assert.Len(t, h.sink.reports[0].Lines, 3)
}

func TestViewRefreshJoinsSinkErrors(t *testing.T) {
	h := newHarness(t, true)
	h.sink.err = errors.New("canvas missing")
	err := h.views.Refresh(context.Background())
	assert.ErrorContains(t, err, "canvas missing")
	assert.Len(t, h.sink.maps, 1)
}

func TestPreferencesThemePersisted(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	assert.Equal(t, domain.ThemeLight, h.prefs.Theme(ctx))

	theme, err := h.prefs.SetTheme(ctx, "DARK")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
	assert.Equal(t, domain.ThemeDark, h.adapter.LoadTheme(ctx))

	_, err = h.prefs.SetTheme(ctx, "sepia")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed))

	assert.Equal(t, domain.ThemeLight, h.prefs.ToggleTheme(ctx))

	fresh := NewPreferencesService(h.adapter, nil, nil)
	fresh.Restore(ctx)
	assert.Equal(t, domain.ThemeLight, fresh.Theme(ctx))
}

func TestAuthServiceLoginEditor(t *testing.T) {
	ctx := context.Background()
	disabled := NewAuthService(config.AuthConfig{JWTSecret: "s"})
	assert.False(t, disabled.Enabled())
	_, _, err := disabled.LoginEditor(ctx, "x")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))

	hash, err := auth.HashPassword("letmein", bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(config.AuthConfig{JWTSecret: "s", AccessTokenTTLMinutes: 10, EditorPasswordHash: hash})
	require.True(t, svc.Enabled())

	_, _, err = svc.LoginEditor(ctx, "wrong")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))

	signed, token, err := svc.LoginEditor(ctx, "letmein")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEditor, token.Role)
	claims, err := svc.TokenManager().ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, EditorSubject, claims.Subject)
}
