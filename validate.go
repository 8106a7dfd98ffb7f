package goshape

import (
	"context"
	"errors"
	"sort"
	"strconv"
)

// Validate checks v against s and returns the normalized result: trimmed and
// cased strings, coerced dates, injected defaults, unknown keys stripped when
// requested. The caller's value is never mutated; validation runs over an
// owned deep copy. On failure the partial result is discarded and an error is
// returned instead: Issues for violations, *SchemaError for a malformed
// schema.
//
// Validation is synchronous and CPU-bound; ctx is accepted for calling
// convention only and is not consulted mid-traversal.
func Validate(ctx context.Context, s Schema, v any, opts ...Options) (any, error) {
	opt := pickOptions(opts)
	members := s.Members()
	if len(members) == 0 {
		return nil, &SchemaError{Err: errors.New("schema has no members")}
	}
	if len(members) == 1 {
		out, err := validateSingle(ctx, members[0], v, opt)
		return finish(out, err, opt)
	}

	// Schema union: each member sees a fresh copy of the input, in
	// declaration order; the first member that validates wins.
	var lastErr error
	var best Issues
	bestSet := false
	for _, m := range members {
		out, err := validateSingle(ctx, m, v, opt)
		if err == nil {
			return finish(out, nil, opt)
		}
		var se *SchemaError
		if errors.As(err, &se) {
			return nil, err
		}
		lastErr = err
		if iss, ok := AsIssues(err); ok && (!bestSet || len(iss) < len(best)) {
			best = iss
			bestSet = true
		}
	}
	if !opt.CollectAll {
		// Abort-early surfaces the last-attempted member's failure.
		return nil, lastErr
	}
	// Collection mode: a dedicated no-match violation, followed by the
	// error set of the member that came closest (fewest violations).
	params := map[string]any{"path": "value"}
	head := Issue{
		Code:    CodeUnionNoMatch,
		Rule:    "base.union",
		Params:  params,
		Message: opt.message("base.union", params),
	}
	return nil, AppendIssues(Issues{head}, best...)
}

// SafeValidate validates v, returning (nil, false) on any error.
func SafeValidate(ctx context.Context, s Schema, v any, opts ...Options) (any, bool) {
	out, err := Validate(ctx, s, v, opts...)
	if err != nil {
		return nil, false
	}
	return out, true
}

// Is reports whether v conforms to s.
func Is(ctx context.Context, s Schema, v any) bool {
	_, err := Validate(ctx, s, v)
	return err == nil
}

func finish(out any, err error, opt Options) (any, error) {
	if err != nil {
		return nil, err
	}
	if opt.SortKeys {
		out = sortKeysDeep(out)
	}
	return out, nil
}

func validateSingle(ctx context.Context, fields Properties, v any, opt Options) (any, error) {
	st := &state{schema: fields, opt: opt}
	root, ok := deepCopy(v).(map[string]any)
	if !ok {
		return nil, Issues{st.issueAt(nil, CodeInvalidType, "object.type", nil)}
	}
	st.seed(fields, root)
	st.walkMap(root, nil)
	if st.schemaErr != nil {
		return nil, st.schemaErr
	}
	if len(st.issues) > 0 {
		return nil, st.issues
	}
	return root, nil
}

// state carries one traversal over one working copy. Nothing here is shared
// between calls, so independent validations may run concurrently.
type state struct {
	schema    Properties
	opt       Options
	issues    Issues
	schemaErr *SchemaError
}

// report records a violation. It returns false when the traversal must stop
// (abort-early, the default).
func (st *state) report(iss Issue) bool {
	st.issues = AppendIssues(st.issues, iss)
	return st.opt.CollectAll
}

// fail records a malformed-schema error; it always stops the traversal.
func (st *state) fail(path []string, err error) bool {
	st.schemaErr = &SchemaError{Path: FormatPath(path), Err: err}
	return false
}

func (st *state) issueAt(path []string, code, rule string, params map[string]any) Issue {
	if params == nil {
		params = map[string]any{}
	}
	p := FormatPath(path)
	if p == "" {
		params["path"] = "value"
	} else {
		params["path"] = p
	}
	return Issue{
		Path:    p,
		Code:    code,
		Rule:    rule,
		Params:  params,
		Message: st.opt.message(rule, params),
	}
}

// seed inserts the missing sentinel for declared keys absent from m, so the
// traversal observes every declared field. It runs for every object
// container as it is entered, the root included; a plain walk of the data
// alone would skip absent-but-required keys.
func (st *state) seed(fields Properties, m map[string]any) {
	for k := range fields {
		if _, ok := m[k]; !ok {
			m[k] = missing{}
		}
	}
}

// walkMap visits m's entries in sorted key order, depth first. Sorted order
// keeps the first-reported violation deterministic under abort-early.
func (st *state) walkMap(m map[string]any, path []string) bool {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := m[k]
		p := append(path, k)
		node := Locate(st.schema, p, v)
		if node == nil {
			// No rule governs this path: unknown-key policy.
			if st.opt.StripUnknown {
				delete(m, k)
			}
			continue
		}
		kk := k
		ok := st.apply(node, v, p,
			func(nv any) { m[kk] = nv },
			func() { delete(m, kk) },
		)
		if !ok {
			return false
		}
	}
	return true
}

// walkSlice visits every element and returns the kept elements. Elements no
// rule governs (an array node with nil Items) follow the unknown-key policy:
// dropped under StripUnknown, retained verbatim otherwise.
func (st *state) walkSlice(arr []any, path []string) ([]any, bool) {
	out := make([]any, 0, len(arr))
	for i := range arr {
		p := append(path, strconv.Itoa(i))
		node := Locate(st.schema, p, arr[i])
		if node == nil {
			if !st.opt.StripUnknown {
				out = append(out, arr[i])
			}
			continue
		}
		idx := len(out)
		out = append(out, arr[i])
		ok := st.apply(node, arr[i], p,
			func(nv any) { out[idx] = nv },
			nil,
		)
		if !ok {
			return out, false
		}
	}
	return out, true
}

// apply runs absent/null handling, dispatches the per-kind rule set, writes
// normalization back through set, and descends into matching containers.
// remove is nil for slice elements, which can never be absent.
func (st *state) apply(node *Node, v any, path []string, set func(any), remove func()) bool {
	if isMissing(v) {
		if !node.HasDefault {
			if remove != nil {
				remove()
			}
			if node.Required {
				return st.report(st.issueAt(path, CodeRequired, "base.required", nil))
			}
			return true
		}
		// The injected default flows through the regular checks below, which
		// keeps repeated validation idempotent.
		v = deepCopy(node.Default)
		set(v)
	}
	if v == nil {
		if node.Nullable || (node.HasDefault && node.Default == nil) {
			return true
		}
		return st.report(st.issueAt(path, CodeNullable, "base.nullable", nil))
	}

	nv, iss, err := st.checkNode(node, v, path)
	if err != nil {
		return st.fail(path, err)
	}
	if iss != nil {
		// A type mismatch on a container also skips its children; siblings
		// continue under collection mode.
		return st.report(*iss)
	}
	set(nv)
	v = nv

	switch node.Kind {
	case KindObject:
		if m, ok := v.(map[string]any); ok {
			st.seed(node.Properties, m)
			return st.walkMap(m, path)
		}
	case KindArray:
		if arr, ok := v.([]any); ok {
			kept, cont := st.walkSlice(arr, path)
			set(kept)
			return cont
		}
	}
	return true
}

// sortKeysDeep rebuilds every mapping of the tree in sorted key order. Go
// maps carry no observable order and JSON encoding already emits sorted
// keys, so this is purely presentational; the rebuilt tree is equivalent.
func sortKeysDeep(v any) any {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]any, len(t))
		for _, k := range keys {
			out[k] = sortKeysDeep(t[k])
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = sortKeysDeep(e)
		}
		return out
	default:
		return v
	}
}
