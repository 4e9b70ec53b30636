package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/sportstats/internal/domain"
)

func TestTeamAggregates(t *testing.T) {
	agg := TeamAggregates(domain.DefaultSnapshot().Teams)
	assert.Equal(t, 3, agg.Count)
	assert.Equal(t, 45, agg.TotalMatches)
	assert.Equal(t, 3680, agg.TotalRuns)
	assert.Equal(t, 66.7, agg.AvgWinRate)
}

func TestTeamAggregatesZeroMatches(t *testing.T) {
	agg := TeamAggregates([]domain.Team{{Name: "A"}, {Name: "B", Matches: 4, Wins: 1}})
	assert.Equal(t, 12.5, agg.AvgWinRate)
	assert.Equal(t, Aggregates{}, TeamAggregates(nil))
}

func TestTopPlayer(t *testing.T) {
	top, ok := TopPlayer(domain.DefaultSnapshot().Players)
	require.True(t, ok)
	assert.Equal(t, "David Brown", top.Name)
	assert.Equal(t, 520, top.Runs)

	_, ok = TopPlayer(nil)
	assert.False(t, ok)
}

func TestTopPlayerTieKeepsEarlierRecord(t *testing.T) {
	top, ok := TopPlayer([]domain.Player{
		{Name: "First", Runs: 100},
		{Name: "Second", Runs: 100},
		{Name: "Third", Runs: 99},
	})
	require.True(t, ok)
	assert.Equal(t, "First", top.Name)
}

func TestWinRateSeries(t *testing.T) {
	points := WinRateSeries([]domain.Team{
		{Name: "A", Matches: 3, Wins: 1},
		{Name: "B"},
	})
	assert.Equal(t, []Point{{Label: "A", Value: 33.3}, {Label: "B", Value: 0}}, points)
}

func TestRadarMetrics(t *testing.T) {
	titans := domain.DefaultSnapshot().Teams[0]
	m := RadarMetrics(titans)
	assert.Equal(t, 30.0, m[0])
	assert.InDelta(t, 66.67, m[1], 0.01)
	assert.InDelta(t, 83.33, m[2], 0.01)
	assert.InDelta(t, 63.33, m[3], 0.01)

	capped := RadarMetrics(domain.Team{Matches: 60, Wins: 60, TotalRuns: 60000, TotalWickets: 900})
	assert.Equal(t, [4]float64{100, 100, 100, 100}, capped)

	assert.Equal(t, [4]float64{}, RadarMetrics(domain.Team{}))
}

func TestUniqueTeamNamesFromPlayers(t *testing.T) {
	names := UniqueTeamNamesFromPlayers(domain.DefaultSnapshot().Players)
	assert.Equal(t, []string{"Titans", "Warriors", "Falcons"}, names)
}

func TestFilterPlayersByTeam(t *testing.T) {
	players := domain.DefaultSnapshot().Players
	assert.Len(t, FilterPlayersByTeam(players, AllTeams), 6)
	assert.Len(t, FilterPlayersByTeam(players, ""), 6)

	falcons := FilterPlayersByTeam(players, "Falcons")
	require.Len(t, falcons, 2)
	assert.Equal(t, "David Brown", falcons[0].Name)
	assert.Equal(t, "Tom Miller", falcons[1].Name)

	assert.Empty(t, FilterPlayersByTeam(players, "falcons"))
}

func TestComparison(t *testing.T) {
	snap := domain.DefaultSnapshot()
	chart := Comparison(snap.Teams[0], snap.Teams[1])
	require.Len(t, chart.Series, 2)
	assert.Equal(t, ComparisonLabels, chart.Labels)
	assert.Equal(t, [5]float64{15, 10, 1250, 95, 66.7}, chart.Series[0].Values)
	assert.Equal(t, "Warriors", chart.Series[1].Team)
}

func TestMapPoints(t *testing.T) {
	teams := append(domain.DefaultSnapshot().Teams,
		domain.Team{Name: "Nomads"},
		domain.Team{Name: "Halfway", Location: &domain.Location{Lat: 12}},
	)
	teams[0].HomeGround = ""

	points := MapPoints(teams)
	require.Len(t, points, 3)
	assert.Equal(t, "Not specified", points[0].HomeGround)
	assert.Equal(t, "Warrior Arena", points[1].HomeGround)
	assert.Equal(t, 66.7, points[2].WinRate)
	assert.Equal(t, 1450, points[2].TotalRuns)
}

func TestBuildReport(t *testing.T) {
	now := time.Date(2024, time.June, 1, 9, 5, 0, 0, time.UTC)
	report := BuildReport(domain.DefaultSnapshot().Teams, now)

	assert.Equal(t, ReportTitle, report.Title)
	assert.Equal(t, "Generated on: 2024-06-01 09:05", report.GeneratedLabel())
	assert.Equal(t, "sportsstats-report-2024-06-01.txt", report.Filename("txt"))
	require.Len(t, report.Lines, 3)
	assert.Equal(t, "Titans: 15 matches, 66.7% win rate", report.Lines[0].String())
	assert.Equal(t, "Warriors: 12 matches, 66.7% win rate", report.Lines[1].String())
}

func TestBuildDashboard(t *testing.T) {
	dash := BuildDashboard(domain.DefaultSnapshot())
	require.NotNil(t, dash.Summary.TopPlayer)
	assert.Equal(t, "David Brown", dash.Summary.TopPlayer.Name)
	assert.Equal(t, []string{"Titans", "Warriors", "Falcons"}, dash.Options.Teams)
	assert.Len(t, dash.Charts.Runs, 3)
	assert.Len(t, dash.Map.Points, 3)
	assert.Equal(t, DefaultMapZoom, dash.Map.Zoom)

	empty := BuildDashboard(domain.Snapshot{})
	assert.Nil(t, empty.Summary.TopPlayer)
	assert.Empty(t, empty.Charts.Radar)
}
