package goshape

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// checkNode dispatches the per-kind rule set. It returns the normalized
// value, at most one violation (checks run in order and stop at the first
// failing rule for the field), or a non-nil error when the schema itself is
// malformed.
func (st *state) checkNode(n *Node, v any, path []string) (any, *Issue, error) {
	switch n.Kind {
	case KindString:
		return st.checkString(n, v, path)
	case KindNumber:
		return st.checkNumber(n, v, path)
	case KindBool:
		return st.checkBool(n, v, path)
	case KindDate:
		return st.checkDate(n, v, path)
	case KindObject:
		return st.checkObject(n, v, path)
	case KindArray:
		return st.checkArray(n, v, path)
	default:
		return v, nil, fmt.Errorf("unknown node kind %d", int(n.Kind))
	}
}

func (st *state) violation(path []string, code, rule string, params map[string]any) *Issue {
	iss := st.issueAt(path, code, rule, params)
	return &iss
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// normalizeString applies the fixed normalization order: trim (unless
// disabled), then lowercase, then uppercase.
func normalizeString(n *Node, s string) string {
	if !n.NoTrim {
		s = strings.TrimSpace(s)
	}
	if n.Lowercase {
		s = strings.ToLower(s)
	}
	if n.Uppercase {
		s = strings.ToUpper(s)
	}
	return s
}

func (st *state) checkString(n *Node, v any, path []string) (any, *Issue, error) {
	s, ok := v.(string)
	if !ok {
		return v, st.violation(path, CodeInvalidType, "string.type", nil), nil
	}
	s = normalizeString(n, s)
	if len(n.Enum) > 0 {
		found := false
		for _, e := range n.Enum {
			// Candidates are normalized the same way before comparing.
			if es, ok := e.(string); ok && normalizeString(n, es) == s {
				found = true
				break
			}
		}
		if !found {
			return s, st.violation(path, CodeInvalidEnum, "string.enum", nil), nil
		}
	}
	if n.Pattern != "" {
		re, err := compilePattern(n.Pattern)
		if err != nil {
			return s, nil, err
		}
		if !re.MatchString(s) {
			return s, st.violation(path, CodePattern, "string.pattern", map[string]any{"pattern": n.Pattern}), nil
		}
	}
	if n.MinLen != nil && utf8.RuneCountInString(s) < *n.MinLen {
		params := map[string]any{"min": *n.MinLen, "plural_suffix": plural(*n.MinLen)}
		return s, st.violation(path, CodeTooShort, "string.min", params), nil
	}
	if n.MaxLen != nil && utf8.RuneCountInString(s) > *n.MaxLen {
		params := map[string]any{"max": *n.MaxLen, "plural_suffix": plural(*n.MaxLen)}
		return s, st.violation(path, CodeTooLong, "string.max", params), nil
	}
	return s, nil, nil
}

func (st *state) checkNumber(n *Node, v any, path []string) (any, *Issue, error) {
	f, ok := asNumber(v)
	if !ok {
		return v, st.violation(path, CodeInvalidType, "number.type", nil), nil
	}
	if len(n.Enum) > 0 {
		found := false
		for _, e := range n.Enum {
			if ef, ok := asNumber(e); ok && ef == f {
				found = true
				break
			}
		}
		if !found {
			return v, st.violation(path, CodeInvalidEnum, "number.enum", nil), nil
		}
	}
	if n.Min != nil && f < *n.Min {
		return v, st.violation(path, CodeTooSmall, "number.min", map[string]any{"min": *n.Min}), nil
	}
	if n.Max != nil && f > *n.Max {
		return v, st.violation(path, CodeTooBig, "number.max", map[string]any{"max": *n.Max}), nil
	}
	if n.Integer && f != math.Trunc(f) {
		return v, st.violation(path, CodeNotInteger, "number.integer", nil), nil
	}
	// Zero counts as positive but not as negative.
	if n.Positive && !(f >= 0) {
		return v, st.violation(path, CodeNotPositive, "number.positive", nil), nil
	}
	if n.Negative && !(f < 0) {
		return v, st.violation(path, CodeNotNegative, "number.negative", nil), nil
	}
	return v, nil, nil
}

func (st *state) checkBool(n *Node, v any, path []string) (any, *Issue, error) {
	if _, ok := v.(bool); !ok {
		return v, st.violation(path, CodeInvalidType, "boolean.type", nil), nil
	}
	return v, nil, nil
}

func (st *state) checkDate(n *Node, v any, path []string) (any, *Issue, error) {
	var t time.Time
	switch d := v.(type) {
	case time.Time:
		t = d
	case string:
		tt, ok := parseDate(d)
		if !ok {
			return v, st.violation(path, CodeInvalidType, "date.type", nil), nil
		}
		t = tt
	default:
		return v, st.violation(path, CodeInvalidType, "date.type", nil), nil
	}
	if n.MinDate != "" {
		min, ok := parseDate(n.MinDate)
		if !ok {
			return v, nil, fmt.Errorf("invalid min date bound %q", n.MinDate)
		}
		if t.Before(min) {
			return t, st.violation(path, CodeTooSmall, "date.min", map[string]any{"min": n.MinDate}), nil
		}
	}
	if n.MaxDate != "" {
		max, ok := parseDate(n.MaxDate)
		if !ok {
			return v, nil, fmt.Errorf("invalid max date bound %q", n.MaxDate)
		}
		if t.After(max) {
			return t, st.violation(path, CodeTooBig, "date.max", map[string]any{"max": n.MaxDate}), nil
		}
	}
	// Replace the value with the canonical date.
	return t, nil, nil
}

func (st *state) checkObject(n *Node, v any, path []string) (any, *Issue, error) {
	if _, ok := v.(map[string]any); !ok {
		return v, st.violation(path, CodeInvalidType, "object.type", nil), nil
	}
	// Recursion into properties is the traversal's responsibility.
	return v, nil, nil
}

func (st *state) checkArray(n *Node, v any, path []string) (any, *Issue, error) {
	arr, ok := v.([]any)
	if !ok {
		return v, st.violation(path, CodeInvalidType, "array.type", nil), nil
	}
	if n.MinLen != nil && len(arr) < *n.MinLen {
		params := map[string]any{"min": *n.MinLen, "plural_suffix": plural(*n.MinLen)}
		return v, st.violation(path, CodeTooShort, "array.min", params), nil
	}
	if n.MaxLen != nil && len(arr) > *n.MaxLen {
		params := map[string]any{"max": *n.MaxLen, "plural_suffix": plural(*n.MaxLen)}
		return v, st.violation(path, CodeTooLong, "array.max", params), nil
	}
	return v, nil, nil
}
