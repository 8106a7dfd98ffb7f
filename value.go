package goshape

import (
	"encoding/json"
	"time"
)

// missing marks a declared key that was absent from the input. The seeding
// step inserts it so the traversal observes every declared field; it never
// survives into the returned value.
type missing struct{}

func isMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// asNumber reports whether v carries a numeric runtime kind and returns it as
// float64. JSON decoding yields float64 or json.Number depending on the
// decoder mode; YAML yields int for whole numbers.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func isNumber(v any) bool {
	_, ok := asNumber(v)
	return ok
}

// deepCopy clones the JSON-like tree v. Scalars (including time.Time and
// json.Number) are copied by value.
func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = deepCopy(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopy(e)
		}
		return out
	default:
		return v
	}
}

// parseDate coerces an ISO-8601 string to time.Time. RFC3339 (with optional
// fractional seconds) and bare dates are accepted.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
