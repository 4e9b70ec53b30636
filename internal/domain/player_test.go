package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

func TestPlayerValidate(t *testing.T) {
	assert.NoError(t, Player{Name: "Ann", Team: "Nowhere"}.Validate())
	assert.True(t, apperrors.HasCode(Player{}.Validate(), apperrors.CodeInvalidRecord))
	assert.True(t, apperrors.HasCode(Player{Name: "Ann", Average: -0.5}.Validate(), apperrors.CodeInvalidRecord))
}

func TestPartialPlayerOverlay(t *testing.T) {
	var patch PartialPlayer
	require.NoError(t, json.Unmarshal([]byte(`{"name":"John Smith","runs":500,"role":"opener"}`), &patch))

	merged := patch.ApplyTo(DefaultSnapshot().Players[0])
	assert.Equal(t, 500, merged.Runs)
	assert.Equal(t, 15, merged.Matches)
	assert.Equal(t, 30.0, merged.Average)

	out, err := json.Marshal(merged)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"John Smith","team":"Titans","matches":15,"runs":500,"average":30,"role":"opener"}`, string(out))
}

func TestSnapshotCloneNeverNil(t *testing.T) {
	snap := Snapshot{}.Clone()
	assert.NotNil(t, snap.Teams)
	assert.NotNil(t, snap.Players)

	out, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.JSONEq(t, `{"teams":[],"players":[]}`, string(out))
}

func TestDefaultSnapshotIsValid(t *testing.T) {
	snap := DefaultSnapshot()
	require.Len(t, snap.Teams, 3)
	require.Len(t, snap.Players, 6)
	for _, team := range snap.Teams {
		assert.NoError(t, team.Validate(), team.Name)
		assert.True(t, team.HasLocation(), team.Name)
	}
	for _, player := range snap.Players {
		assert.NoError(t, player.Validate(), player.Name)
	}
}

func TestParseTheme(t *testing.T) {
	theme, ok := ParseTheme(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, theme)

	_, ok = ParseTheme("blue")
	assert.False(t, ok)

	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, DefaultTheme.Toggle())
}

func TestNewClockReading(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	reading := NewClockReading(at)
	assert.Equal(t, "14:07:09", reading.Time)
	assert.Equal(t, "Tue, Mar 05, 2024", reading.Date)
}
