package apperstore

import (
	"encoding/json"
	"strings"

	"github.com/mkaleko/shule/core"
)

// RawRecord is a record exactly as the store returns it. Records carry
// two attribute-naming schemes at once — a legacy camelCase one and the
// current "_c"-suffixed one — a leftover of a half-finished data
// migration. All dual-scheme reads happen here, at the ingestion
// boundary; nothing outside this package ever sees a RawRecord.
type RawRecord map[string]interface{}

// Value returns the record's value for a logical snake_case attribute
// name: the current-scheme value when defined, else the legacy-scheme
// value, else nil. It never panics, whatever the record holds.
func (r RawRecord) Value(logical string) interface{} {
	if v, ok := r[logical+"_c"]; ok && v != nil {
		return v
	}
	if v, ok := r[legacyName(logical)]; ok {
		return v
	}
	return nil
}

// legacyName converts a logical snake_case name to the legacy camelCase
// spelling: "first_name" -> "firstName".
func legacyName(logical string) string {
	parts := strings.Split(logical, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// ID returns the store-assigned integer identifier.
func (r RawRecord) ID() int {
	return toInt(r["Id"])
}

func (r RawRecord) String(logical string) string {
	switch v := r.Value(logical).(type) {
	case string:
		return v
	default:
		return ""
	}
}

// Int reads an integer attribute. Lookup references arrive as objects
// ({"Id": n, "Name": ...}); their Id is what we want.
func (r RawRecord) Int(logical string) int {
	return toInt(r.Value(logical))
}

// FloatPtr reads an optional numeric attribute; nil when absent or
// non-numeric.
func (r RawRecord) FloatPtr(logical string) *float64 {
	switch v := r.Value(logical).(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	case string:
		if v == "" {
			return nil
		}
		var f float64
		if err := json.Unmarshal([]byte(v), &f); err == nil {
			return &f
		}
	}
	return nil
}

// Day reads a date attribute at day granularity; unparseable values
// yield the zero Day.
func (r RawRecord) Day(logical string) core.Day {
	s := r.String(logical)
	if s == "" {
		return core.Day{}
	}
	d, err := core.ParseDay(s)
	if err != nil {
		return core.Day{}
	}
	return d
}

// StringList reads a comma-separated attribute as a slice.
func (r RawRecord) StringList(logical string) []string {
	s := r.String(logical)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IntList reads a comma-separated attribute of integer ids.
func (r RawRecord) IntList(logical string) []int {
	parts := r.StringList(logical)
	if parts == nil {
		return nil
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		var n int
		if err := json.Unmarshal([]byte(p), &n); err == nil {
			out = append(out, n)
		}
	}
	return out
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	case string:
		var i int
		if err := json.Unmarshal([]byte(n), &i); err == nil {
			return i
		}
	case map[string]interface{}:
		// lookup reference object
		return toInt(n["Id"])
	}
	return 0
}

func joinInts(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		b, _ := json.Marshal(id)
		parts[i] = string(b)
	}
	return strings.Join(parts, ",")
}
