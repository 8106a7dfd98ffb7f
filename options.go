package goshape

import "github.com/goshape/goshape/i18n"

// Options bundles per-call validation behavior. The zero value gives the
// defaults: stop at the first violation, retain unknown keys, leave key
// order alone, use the built-in message templates.
type Options struct {
	// CollectAll disables the default abort-early behavior: every violation
	// discovered during one full traversal is collected and surfaced
	// together instead of stopping at the first one.
	CollectAll bool

	// StripUnknown drops data keys not declared in the schema. When false
	// they are retained verbatim in the output.
	StripUnknown bool

	// SortKeys deep-rebuilds output mappings in sorted key order before
	// returning. Purely presentational.
	SortKeys bool

	// Messages overrides message templates per "category.rule" key (for
	// example "string.min"). Templates may use {path}, {min}, {max},
	// {pattern} and {plural_suffix} tokens. Keys not present here fall back
	// to the i18n translator.
	Messages map[string]string
}

// pickOptions collapses a variadic option list, last one wins (matching how
// the parse entry points accept options).
func pickOptions(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[len(opts)-1]
}

// message expands the template for key with params applied.
func (o Options) message(key string, params map[string]any) string {
	tmpl, ok := o.Messages[key]
	if !ok {
		tmpl = i18n.T(key)
	}
	return i18n.Render(tmpl, params)
}
