package goshape

import "time"

// Resolve picks the structurally best-matching candidate for v, falling back
// to the first candidate when nothing matches. This is a deterministic
// single-pass guess, not constraint solving: candidates are tried in order
// and the first whose kind rule accepts the value wins. The same policy
// disambiguates whole-schema unions and single-field unions.
func Resolve(candidates []*Node, v any) *Node {
	if len(candidates) == 0 {
		return nil
	}
	if isMissing(v) {
		// Value not yet known; the first branch stands in.
		return candidates[0]
	}
	if v == nil {
		for _, c := range candidates {
			if c.Nullable {
				return c
			}
		}
		return candidates[0]
	}
	for _, c := range candidates {
		if matchesKind(c.Kind, v) {
			return c
		}
	}
	return candidates[0]
}

func matchesKind(k Kind, v any) bool {
	switch k {
	case KindDate:
		if _, ok := v.(string); ok {
			return true
		}
		_, ok := v.(time.Time)
		return ok
	case KindArray:
		_, ok := v.([]any)
		return ok
	case KindObject:
		_, ok := v.(map[string]any)
		return ok
	case KindString:
		_, ok := v.(string)
		return ok
	case KindNumber:
		return isNumber(v)
	case KindBool:
		_, ok := v.(bool)
		return ok
	default:
		return false
	}
}
