package dto

import (
	"github.com/spec-kit/sportstats/internal/domain"
	"github.com/spec-kit/sportstats/internal/repository"
)

// SampleResponse lists the sample teams that were added.
type SampleResponse struct {
	Added []string `json:"added"`
}

// ImportResponse reports the outcome of POST /api/import.
type ImportResponse struct {
	Teams   repository.MergeStats `json:"teams"`
	Players repository.MergeStats `json:"players"`
	Skipped int                   `json:"skipped"`
}

// ThemeRequest payload for PUT /api/preferences/theme. "toggle" flips the
// current theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse carries the active theme.
type ThemeResponse struct {
	Theme domain.Theme `json:"theme"`
}

// ComparisonQuery holds the two teams of GET /api/charts/comparison.
type ComparisonQuery struct {
	Team1 string `query:"team1"`
	Team2 string `query:"team2"`
}
