package analytics

import "github.com/spec-kit/sportstats/internal/domain"

// Summary backs the dashboard header cards.
type Summary struct {
	Aggregates Aggregates     `json:"aggregates"`
	TopPlayer  *domain.Player `json:"topPlayer"`
}

// FilterOptions feeds the team selectors.
type FilterOptions struct {
	PlayerTeams []string `json:"playerTeams"`
	Teams       []string `json:"teams"`
}

// Dashboard is every view computed from one snapshot.
type Dashboard struct {
	Summary Summary       `json:"summary"`
	Options FilterOptions `json:"options"`
	Charts  ChartSet      `json:"charts"`
	Map     MapView       `json:"map"`
}

// Summarize computes the header cards. TopPlayer is nil without players.
func Summarize(snapshot domain.Snapshot) Summary {
	summary := Summary{Aggregates: TeamAggregates(snapshot.Teams)}
	if top, ok := TopPlayer(snapshot.Players); ok {
		summary.TopPlayer = &top
	}
	return summary
}

// Options lists the selector values for snapshot.
func Options(snapshot domain.Snapshot) FilterOptions {
	return FilterOptions{
		PlayerTeams: UniqueTeamNamesFromPlayers(snapshot.Players),
		Teams:       TeamNames(snapshot.Teams),
	}
}

// BuildDashboard computes every view for snapshot.
func BuildDashboard(snapshot domain.Snapshot) Dashboard {
	return Dashboard{
		Summary: Summarize(snapshot),
		Options: Options(snapshot),
		Charts:  Charts(snapshot.Teams),
		Map:     Map(snapshot.Teams),
	}
}
