// Package analytics computes the dashboard's derived views. Every function is
// pure and recomputes from the snapshot it is given.
package analytics

import (
	"math"
	"strings"

	"github.com/spec-kit/sportstats/internal/domain"
)

// AllTeams is the filter value that selects every player.
const AllTeams = "all"

// Aggregates summarizes the team collection.
type Aggregates struct {
	Count        int     `json:"count"`
	TotalMatches int     `json:"totalMatches"`
	TotalRuns    int     `json:"totalRuns"`
	AvgWinRate   float64 `json:"avgWinRate"`
}

// WinRate returns wins/matches as a percentage, or 0 when no matches were played.
func WinRate(team domain.Team) float64 {
	if team.Matches <= 0 {
		return 0
	}
	return float64(team.Wins) / float64(team.Matches) * 100
}

// TeamAggregates totals the teams and averages their win rates to one decimal.
func TeamAggregates(teams []domain.Team) Aggregates {
	agg := Aggregates{Count: len(teams)}
	if len(teams) == 0 {
		return agg
	}
	var rateSum float64
	for _, team := range teams {
		agg.TotalMatches += team.Matches
		agg.TotalRuns += team.TotalRuns
		rateSum += WinRate(team)
	}
	agg.AvgWinRate = round1(rateSum / float64(len(teams)))
	return agg
}

// TopPlayer returns the player with the most runs. The earlier record wins ties.
func TopPlayer(players []domain.Player) (domain.Player, bool) {
	if len(players) == 0 {
		return domain.Player{}, false
	}
	best := players[0]
	for _, p := range players[1:] {
		if p.Runs > best.Runs {
			best = p
		}
	}
	return best.Clone(), true
}

// UniqueTeamNamesFromPlayers lists distinct player team values in first-seen order.
func UniqueTeamNamesFromPlayers(players []domain.Player) []string {
	seen := make(map[string]struct{}, len(players))
	names := make([]string, 0, len(players))
	for _, p := range players {
		if _, ok := seen[p.Team]; ok {
			continue
		}
		seen[p.Team] = struct{}{}
		names = append(names, p.Team)
	}
	return names
}

// TeamNames lists team names in store order.
func TeamNames(teams []domain.Team) []string {
	names := make([]string, 0, len(teams))
	for _, team := range teams {
		names = append(names, team.Name)
	}
	return names
}

// FilterPlayersByTeam keeps players whose team matches exactly. An empty
// filter or AllTeams returns every player.
func FilterPlayersByTeam(players []domain.Player, team string) []domain.Player {
	out := make([]domain.Player, 0, len(players))
	filter := strings.TrimSpace(team)
	for _, p := range players {
		if filter == "" || filter == AllTeams || p.Team == filter {
			out = append(out, p.Clone())
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
