// Package gen renders Go type declarations from goshape schemas, for
// consumers that want a typed artifact matching a validated payload. It is a
// pure function of the schema shape and never touches the validation engine.
package gen

import (
	"fmt"
	"sort"
	"strings"

	gs "github.com/goshape/goshape"
)

// Render emits the type declaration(s) for s under the given name. A schema
// union renders one struct per member, suffixed with its 1-based position.
func Render(name string, s gs.Schema) (string, error) {
	if name == "" {
		return "", fmt.Errorf("gen: empty type name")
	}
	members := s.Members()
	if len(members) == 1 {
		return renderStruct(name, members[0]), nil
	}
	parts := make([]string, 0, len(members))
	for i, m := range members {
		parts = append(parts, renderStruct(fmt.Sprintf("%s%d", name, i+1), m))
	}
	return strings.Join(parts, "\n"), nil
}

// RenderFile wraps Render output in a complete Go source file, adding the
// time import when any date field is present.
func RenderFile(pkg, name string, s gs.Schema) (string, error) {
	body, err := Render(name, s)
	if err != nil {
		return "", err
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "package %s\n\n", pkg)
	if strings.Contains(body, "time.Time") {
		b.WriteString("import \"time\"\n\n")
	}
	b.WriteString(body)
	return b.String(), nil
}

func renderStruct(name string, p gs.Properties) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "type %s struct {\n", name)
	writeFields(b, p, 1)
	b.WriteString("}\n")
	return b.String()
}

func writeFields(b *strings.Builder, p gs.Properties, depth int) {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	indent := strings.Repeat("\t", depth)
	for _, k := range names {
		t := p[k]
		alts := t.Alternatives()
		optional := true
		for _, alt := range alts {
			if alt.Required {
				optional = false
				break
			}
		}
		typ := goType(alts, depth)
		tag := k
		if optional {
			tag += ",omitempty"
			if !strings.HasPrefix(typ, "*") && !strings.HasPrefix(typ, "[]") && typ != "any" && !strings.HasPrefix(typ, "struct") && !strings.HasPrefix(typ, "map[") {
				typ = "*" + typ
			}
		}
		fmt.Fprintf(b, "%s%s %s `json:%q`\n", indent, exportName(k), typ, tag)
	}
}

func goType(alts []*gs.Node, depth int) string {
	if len(alts) != 1 {
		// Field unions have no single Go shape.
		return "any"
	}
	n := alts[0]
	switch n.Kind {
	case gs.KindString:
		return "string"
	case gs.KindNumber:
		if n.Integer {
			return "int64"
		}
		return "float64"
	case gs.KindBool:
		return "bool"
	case gs.KindDate:
		return "time.Time"
	case gs.KindObject:
		b := &strings.Builder{}
		b.WriteString("struct {\n")
		writeFields(b, n.Properties, depth+1)
		b.WriteString(strings.Repeat("\t", depth))
		b.WriteString("}")
		return b.String()
	case gs.KindArray:
		if n.Items == nil {
			return "[]any"
		}
		return "[]" + goType(n.Items.Alternatives(), depth)
	default:
		return "any"
	}
}

// exportName converts a snake_case or kebab-case field name to an exported
// Go identifier: "zip_code" becomes "ZipCode".
func exportName(k string) string {
	parts := strings.FieldsFunc(k, func(r rune) bool { return r == '_' || r == '-' || r == '.' })
	if len(parts) == 0 {
		return "Field"
	}
	b := &strings.Builder{}
	for _, p := range parts {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
