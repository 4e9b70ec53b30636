package domain

// Snapshot is a point-in-time copy of every team and player in insertion order.
type Snapshot struct {
	Teams   []Team   `json:"teams"`
	Players []Player `json:"players"`
}

// Clone returns a deep copy. Nil collections become empty slices.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Teams:   make([]Team, len(s.Teams)),
		Players: make([]Player, len(s.Players)),
	}
	for i, team := range s.Teams {
		out.Teams[i] = team.Clone()
	}
	for i, player := range s.Players {
		out.Players[i] = player.Clone()
	}
	return out
}

// DefaultSnapshot returns the seed data loaded when nothing has been stored yet.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Teams: []Team{
			{
				Name: "Titans", Players: 11, Matches: 15, Wins: 10, Losses: 5,
				TotalRuns: 1250, TotalWickets: 95, Founded: 2020, Captain: "John Smith",
				Location:   &Location{Lat: 40.7128, Lng: -74.0060, City: "New York"},
				HomeGround: "Titan Stadium",
			},
			{
				Name: "Warriors", Players: 11, Matches: 12, Wins: 8, Losses: 4,
				TotalRuns: 980, TotalWickets: 78, Founded: 2019, Captain: "Mike Johnson",
				Location:   &Location{Lat: 34.0522, Lng: -118.2437, City: "Los Angeles"},
				HomeGround: "Warrior Arena",
			},
			{
				Name: "Falcons", Players: 11, Matches: 18, Wins: 12, Losses: 6,
				TotalRuns: 1450, TotalWickets: 112, Founded: 2021, Captain: "David Brown",
				Location:   &Location{Lat: 41.8781, Lng: -87.6298, City: "Chicago"},
				HomeGround: "Falcon Field",
			},
		},
		Players: []Player{
			{Name: "John Smith", Team: "Titans", Matches: 15, Runs: 450, Average: 30.0},
			{Name: "Mike Johnson", Team: "Warriors", Matches: 12, Runs: 380, Average: 31.7},
			{Name: "David Brown", Team: "Falcons", Matches: 18, Runs: 520, Average: 28.9},
			{Name: "Alex Wilson", Team: "Titans", Matches: 14, Runs: 410, Average: 29.3},
			{Name: "Chris Davis", Team: "Warriors", Matches: 16, Runs: 480, Average: 30.0},
			{Name: "Tom Miller", Team: "Falcons", Matches: 13, Runs: 390, Average: 30.0},
		},
	}
}

// SampleTeams returns the teams added by the "add sample data" action.
func SampleTeams() []Team {
	return []Team{
		{
			Name: "Eagles", Players: 11, Matches: 10, Wins: 7, Losses: 3,
			TotalRuns: 850, TotalWickets: 65, Founded: 2022, Captain: "Sample Captain",
		},
	}
}
