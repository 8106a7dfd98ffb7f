package goshape

import (
	"sort"

	js "github.com/goshape/goshape/jsonschema"
)

// JSONSchema projects s into a JSON Schema representation for
// interoperability output. The schema value is read only; options contribute
// the unknown-key policy (StripUnknown maps to additionalProperties=false).
func JSONSchema(s Schema, opts ...Options) (*js.Schema, error) {
	opt := pickOptions(opts)
	members := s.Members()
	if len(members) == 1 {
		return exportFields(members[0], opt), nil
	}
	out := &js.Schema{OneOf: make([]*js.Schema, 0, len(members))}
	for _, m := range members {
		out.OneOf = append(out.OneOf, exportFields(m, opt))
	}
	return out, nil
}

func exportFields(p Properties, opt Options) *js.Schema {
	props := make(map[string]*js.Schema, len(p))
	var required []string
	for k, t := range p {
		props[k] = exportType(t, opt)
		for _, alt := range t.Alternatives() {
			if alt.Required {
				required = append(required, k)
				break
			}
		}
	}
	sort.Strings(required)
	return &js.Schema{
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: !opt.StripUnknown,
	}
}

func exportType(t Type, opt Options) *js.Schema {
	alts := t.Alternatives()
	if len(alts) == 1 {
		return exportNode(alts[0], opt)
	}
	out := &js.Schema{OneOf: make([]*js.Schema, 0, len(alts))}
	for _, alt := range alts {
		out.OneOf = append(out.OneOf, exportNode(alt, opt))
	}
	return out
}

func exportNode(n *Node, opt Options) *js.Schema {
	out := &js.Schema{}
	switch n.Kind {
	case KindString:
		out.Type = "string"
		out.MinLength = n.MinLen
		out.MaxLength = n.MaxLen
		out.Pattern = n.Pattern
		out.Enum = n.Enum
	case KindNumber:
		out.Type = "number"
		if n.Integer {
			out.Type = "integer"
		}
		out.Minimum = n.Min
		out.Maximum = n.Max
		if n.Positive && out.Minimum == nil {
			zero := 0.0
			out.Minimum = &zero
		}
		out.Enum = n.Enum
	case KindBool:
		out.Type = "boolean"
	case KindDate:
		out.Type = "string"
		out.Format = "date-time"
	case KindObject:
		out = exportFields(n.Properties, opt)
	case KindArray:
		out.Type = "array"
		if n.Items != nil {
			out.Items = exportType(n.Items, opt)
		}
		out.MinItems = n.MinLen
		out.MaxItems = n.MaxLen
	}
	if n.HasDefault {
		out.Default = n.Default
	}
	if n.Nullable {
		return &js.Schema{OneOf: []*js.Schema{out, {Type: "null"}}}
	}
	return out
}
