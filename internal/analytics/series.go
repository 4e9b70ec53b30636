package analytics

import "github.com/spec-kit/sportstats/internal/domain"

// RadarLabels names the RadarMetrics dimensions in order.
var RadarLabels = [4]string{"Matches Played", "Win Rate %", "Avg Runs/Match", "Avg Wickets/Match"}

// ComparisonLabels names the Comparison values in order.
var ComparisonLabels = [5]string{"Matches", "Wins", "Total Runs", "Total Wickets", "Win Rate %"}

// Point is one labelled value in a chart series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// RadarEntry is one team's normalized radar dimensions.
type RadarEntry struct {
	Team   string     `json:"team"`
	Values [4]float64 `json:"values"`
}

// ComparisonSeries is one side of a head-to-head comparison.
type ComparisonSeries struct {
	Team   string     `json:"team"`
	Values [5]float64 `json:"values"`
}

// ComparisonChart holds both sides of a comparison with shared labels.
type ComparisonChart struct {
	Labels [5]string          `json:"labels"`
	Series []ComparisonSeries `json:"series"`
}

// ChartSet is every chart model the dashboard draws.
type ChartSet struct {
	Runs    []Point      `json:"runs"`
	WinRate []Point      `json:"winRate"`
	Radar   []RadarEntry `json:"radar"`
}

// RunsSeries returns total runs per team.
func RunsSeries(teams []domain.Team) []Point {
	points := make([]Point, 0, len(teams))
	for _, team := range teams {
		points = append(points, Point{Label: team.Name, Value: float64(team.TotalRuns)})
	}
	return points
}

// WinRateSeries returns each team's win rate rounded to one decimal.
func WinRateSeries(teams []domain.Team) []Point {
	points := make([]Point, 0, len(teams))
	for _, team := range teams {
		points = append(points, Point{Label: team.Name, Value: round1(WinRate(team))})
	}
	return points
}

// RadarMetrics normalizes a team onto four 0..100 dimensions: matches x2,
// win rate, runs per match and wickets per match x10.
func RadarMetrics(team domain.Team) [4]float64 {
	var runsPerMatch, wicketsPerMatch float64
	if team.Matches > 0 {
		runsPerMatch = float64(team.TotalRuns) / float64(team.Matches)
		wicketsPerMatch = float64(team.TotalWickets) / float64(team.Matches)
	}
	return [4]float64{
		clamp(float64(team.Matches)*2, 0, 100),
		clamp(WinRate(team), 0, 100),
		clamp(runsPerMatch, 0, 100),
		clamp(wicketsPerMatch*10, 0, 100),
	}
}

// RadarSeries returns RadarMetrics for every team.
func RadarSeries(teams []domain.Team) []RadarEntry {
	series := make([]RadarEntry, 0, len(teams))
	for _, team := range teams {
		series = append(series, RadarEntry{Team: team.Name, Values: RadarMetrics(team)})
	}
	return series
}

// Comparison lines up matches, wins, total runs, total wickets and win rate for two teams.
func Comparison(a, b domain.Team) ComparisonChart {
	return ComparisonChart{
		Labels: ComparisonLabels,
		Series: []ComparisonSeries{comparisonValues(a), comparisonValues(b)},
	}
}

func comparisonValues(team domain.Team) ComparisonSeries {
	return ComparisonSeries{
		Team: team.Name,
		Values: [5]float64{
			float64(team.Matches),
			float64(team.Wins),
			float64(team.TotalRuns),
			float64(team.TotalWickets),
			round1(WinRate(team)),
		},
	}
}

// Charts builds the full chart set for teams.
func Charts(teams []domain.Team) ChartSet {
	return ChartSet{
		Runs:    RunsSeries(teams),
		WinRate: WinRateSeries(teams),
		Radar:   RadarSeries(teams),
	}
}
