// Package transfer converts the store to and from the portable export document.
package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/sportstats/internal/domain"
	apperrors "github.com/spec-kit/sportstats/pkg/util/errorutil"
)

// Version is written into every exported document.
const Version = "1.0"

// exportDateLayout is ISO-8601 UTC with millisecond precision.
const exportDateLayout = "2006-01-02T15:04:05.000Z07:00"

// Document is the export file format.
type Document struct {
	Teams      []domain.Team   `json:"teams"`
	Players    []domain.Player `json:"players"`
	ExportDate string          `json:"exportDate"`
	Version    string          `json:"version"`
}

// Payload is the parsed content of an import document.
type Payload struct {
	Teams   []domain.PartialTeam
	Players []domain.PartialPlayer
	// Skipped counts array elements that are not objects or carry no usable name.
	Skipped int
}

// Export builds a document from snapshot stamped with now.
func Export(snapshot domain.Snapshot, now time.Time) Document {
	cp := snapshot.Clone()
	return Document{
		Teams:      cp.Teams,
		Players:    cp.Players,
		ExportDate: now.UTC().Format(exportDateLayout),
		Version:    Version,
	}
}

// Encode pretty-prints the document with two-space indentation.
func (d Document) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Filename is the download name for an export taken at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("sports_data_export_%s.json", now.Format("2006-01-02"))
}

// Parse reads an import document. Empty input yields an empty payload; input
// that is not a JSON object is a parse error. Non-array teams or players
// members are ignored.
func Parse(raw []byte) (Payload, error) {
	var payload Payload
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return payload, nil
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &members); err != nil {
		return Payload{}, apperrors.NewParseError("import document is not valid JSON", err)
	}
	if members == nil {
		return Payload{}, apperrors.NewParseError("import document must be a JSON object", nil)
	}

	for _, elem := range arrayMember(members, "teams") {
		var team domain.PartialTeam
		if err := json.Unmarshal(elem, &team); err != nil || !named(team.Name) {
			payload.Skipped++
			continue
		}
		payload.Teams = append(payload.Teams, team)
	}
	for _, elem := range arrayMember(members, "players") {
		var player domain.PartialPlayer
		if err := json.Unmarshal(elem, &player); err != nil || !named(player.Name) {
			payload.Skipped++
			continue
		}
		payload.Players = append(payload.Players, player)
	}
	return payload, nil
}

func arrayMember(members map[string]json.RawMessage, key string) []json.RawMessage {
	raw, ok := members[key]
	if !ok {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	return elems
}

// named reports whether a decoded name is present and not blank.
func named(name *string) bool {
	return name != nil && strings.TrimSpace(*name) != ""
}
