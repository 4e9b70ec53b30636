package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotObject = errors.New("record must be a JSON object")

// splitExtra returns the members of a JSON object whose keys are not in known.
func splitExtra(data []byte, known map[string]struct{}) (map[string]json.RawMessage, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, errNotObject
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	var extra map[string]json.RawMessage
	for key, value := range members {
		if _, ok := known[key]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[key] = value
	}
	return extra, nil
}

// withExtra adds the extra members to an encoded JSON object. Known fields win.
func withExtra(base []byte, extra map[string]json.RawMessage) ([]byte, error) {
	if len(extra) == 0 {
		return base, nil
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(base, &members); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, ok := members[key]; ok {
			continue
		}
		members[key] = value
	}
	return json.Marshal(members)
}

func cloneExtra(extra map[string]json.RawMessage) map[string]json.RawMessage {
	if extra == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(extra))
	for key, value := range extra {
		out[key] = append(json.RawMessage(nil), value...)
	}
	return out
}

// overlayExtra returns base updated with incoming; incoming wins on conflict.
func overlayExtra(base, incoming map[string]json.RawMessage) map[string]json.RawMessage {
	if len(incoming) == 0 {
		return cloneExtra(base)
	}
	out := cloneExtra(base)
	if out == nil {
		out = make(map[string]json.RawMessage, len(incoming))
	}
	for key, value := range incoming {
		out[key] = append(json.RawMessage(nil), value...)
	}
	return out
}

func keySet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

// objectMembers splits a JSON object into its members.
func objectMembers(data []byte) (map[string]json.RawMessage, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, errNotObject
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// looseFloat reads a JSON number or a numeric string. Anything else is nil.
func looseFloat(raw json.RawMessage) *float64 {
	if isAbsent(raw) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// looseInt reads an integral value such as 5, 5.0 or "5".
func looseInt(raw json.RawMessage) *int {
	f := looseFloat(raw)
	if f == nil || *f != math.Trunc(*f) || *f < math.MinInt32 || *f > math.MaxInt32 {
		return nil
	}
	v := int(*f)
	return &v
}

// looseString reads a JSON string, or a number in its shortest decimal form.
func looseString(raw json.RawMessage) *string {
	if isAbsent(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	s = strconv.FormatFloat(f, 'f', -1, 64)
	return &s
}

// looseLocation reads a location object, coercing its members like the
// record fields. A value that is not an object is nil.
func looseLocation(raw json.RawMessage) *Location {
	if isAbsent(raw) {
		return nil
	}
	members, err := objectMembers(raw)
	if err != nil {
		return nil
	}
	var loc Location
	if lat := looseFloat(members["lat"]); lat != nil {
		loc.Lat = *lat
	}
	if lng := looseFloat(members["lng"]); lng != nil {
		loc.Lng = *lng
	}
	if city := looseString(members["city"]); city != nil {
		loc.City = *city
	}
	return &loc
}
