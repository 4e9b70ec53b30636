package analytics

import (
	"fmt"
	"time"

	"github.com/spec-kit/sportstats/internal/domain"
)

// ReportTitle heads every generated report.
const ReportTitle = "SportStats Analytics Report"

// Default map viewport over the continental US.
const (
	DefaultMapCenterLat = 39.8283
	DefaultMapCenterLng = -98.5795
	DefaultMapZoom      = 4
)

// MapPoint is a team marker with its popup fields.
type MapPoint struct {
	Team       string  `json:"team"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	City       string  `json:"city,omitempty"`
	Captain    string  `json:"captain"`
	HomeGround string  `json:"homeGround"`
	Matches    int     `json:"matches"`
	WinRate    float64 `json:"winRate"`
	TotalRuns  int     `json:"totalRuns"`
}

// MapView is the marker set plus the initial viewport.
type MapView struct {
	CenterLat float64    `json:"centerLat"`
	CenterLng float64    `json:"centerLng"`
	Zoom      int        `json:"zoom"`
	Points    []MapPoint `json:"points"`
}

// ReportLine summarizes one team in the report.
type ReportLine struct {
	Team    string  `json:"team"`
	Matches int     `json:"matches"`
	WinRate float64 `json:"winRate"`
}

// String renders the line as "Name: N matches, X% win rate".
func (l ReportLine) String() string {
	return fmt.Sprintf("%s: %d matches, %.1f%% win rate", l.Team, l.Matches, l.WinRate)
}

// Report is the model handed to report sinks.
type Report struct {
	Title       string       `json:"title"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Aggregates  Aggregates   `json:"aggregates"`
	Lines       []ReportLine `json:"lines"`
}

// GeneratedLabel formats the generation time as shown in the report header.
func (r Report) GeneratedLabel() string {
	return "Generated on: " + r.GeneratedAt.Format("2006-01-02 15:04")
}

// Filename is the download name for a report of the given extension.
func (r Report) Filename(ext string) string {
	return fmt.Sprintf("sportsstats-report-%s.%s", r.GeneratedAt.Format("2006-01-02"), ext)
}

// MapPoints returns a marker for every team with a non-zero location.
func MapPoints(teams []domain.Team) []MapPoint {
	points := make([]MapPoint, 0, len(teams))
	for _, team := range teams {
		if !team.HasLocation() {
			continue
		}
		ground := team.HomeGround
		if ground == "" {
			ground = "Not specified"
		}
		points = append(points, MapPoint{
			Team:       team.Name,
			Lat:        team.Location.Lat,
			Lng:        team.Location.Lng,
			City:       team.Location.City,
			Captain:    team.Captain,
			HomeGround: ground,
			Matches:    team.Matches,
			WinRate:    round1(WinRate(team)),
			TotalRuns:  team.TotalRuns,
		})
	}
	return points
}

// Map wraps MapPoints in the default viewport.
func Map(teams []domain.Team) MapView {
	return MapView{
		CenterLat: DefaultMapCenterLat,
		CenterLng: DefaultMapCenterLng,
		Zoom:      DefaultMapZoom,
		Points:    MapPoints(teams),
	}
}

// BuildReport assembles the report model at now.
func BuildReport(teams []domain.Team, now time.Time) Report {
	lines := make([]ReportLine, 0, len(teams))
	for _, team := range teams {
		lines = append(lines, ReportLine{
			Team:    team.Name,
			Matches: team.Matches,
			WinRate: round1(WinRate(team)),
		})
	}
	return Report{
		Title:       ReportTitle,
		GeneratedAt: now,
		Aggregates:  TeamAggregates(teams),
		Lines:       lines,
	}
}
