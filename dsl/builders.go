package dsl

import (
	gs "github.com/goshape/goshape"
)

// OneOf combines alternatives into a field-level union. Builders and plain
// nodes mix freely; nested unions are flattened.
func OneOf(ts ...gs.Type) gs.Type {
	var u gs.Union
	for _, t := range ts {
		u = append(u, t.Alternatives()...)
	}
	return u
}

func intPtr(n int) *int {
	return &n
}

func floatPtr(f float64) *float64 {
	return &f
}

// ---- string ----

type StringBuilder struct{ n *gs.Node }

func String() *StringBuilder {
	return &StringBuilder{n: &gs.Node{Kind: gs.KindString}}
}

func (b *StringBuilder) Required() *StringBuilder {
	b.n.Required = true
	return b
}

func (b *StringBuilder) Nullable() *StringBuilder {
	b.n.Nullable = true
	return b
}

func (b *StringBuilder) Default(v any) *StringBuilder {
	b.n.Default = v
	b.n.HasDefault = true
	return b
}

func (b *StringBuilder) Enum(vals ...string) *StringBuilder {
	for _, v := range vals {
		b.n.Enum = append(b.n.Enum, v)
	}
	return b
}

func (b *StringBuilder) Pattern(src string) *StringBuilder {
	b.n.Pattern = src
	return b
}

func (b *StringBuilder) Min(n int) *StringBuilder {
	b.n.MinLen = intPtr(n)
	return b
}

func (b *StringBuilder) Max(n int) *StringBuilder {
	b.n.MaxLen = intPtr(n)
	return b
}

func (b *StringBuilder) NoTrim() *StringBuilder {
	b.n.NoTrim = true
	return b
}

func (b *StringBuilder) Lowercase() *StringBuilder {
	b.n.Lowercase = true
	return b
}

func (b *StringBuilder) Uppercase() *StringBuilder {
	b.n.Uppercase = true
	return b
}

func (b *StringBuilder) Build() *gs.Node {
	return b.n
}

// Alternatives implements goshape.Type.
func (b *StringBuilder) Alternatives() []*gs.Node {
	return []*gs.Node{b.n}
}

// ---- number ----

type NumberBuilder struct{ n *gs.Node }

func Number() *NumberBuilder {
	return &NumberBuilder{n: &gs.Node{Kind: gs.KindNumber}}
}

func (b *NumberBuilder) Required() *NumberBuilder {
	b.n.Required = true
	return b
}

func (b *NumberBuilder) Nullable() *NumberBuilder {
	b.n.Nullable = true
	return b
}

func (b *NumberBuilder) Default(v any) *NumberBuilder {
	b.n.Default = v
	b.n.HasDefault = true
	return b
}

func (b *NumberBuilder) Enum(vals ...float64) *NumberBuilder {
	for _, v := range vals {
		b.n.Enum = append(b.n.Enum, v)
	}
	return b
}

func (b *NumberBuilder) Min(f float64) *NumberBuilder {
	b.n.Min = floatPtr(f)
	return b
}

func (b *NumberBuilder) Max(f float64) *NumberBuilder {
	b.n.Max = floatPtr(f)
	return b
}

func (b *NumberBuilder) Integer() *NumberBuilder {
	b.n.Integer = true
	return b
}

func (b *NumberBuilder) Positive() *NumberBuilder {
	b.n.Positive = true
	return b
}

func (b *NumberBuilder) Negative() *NumberBuilder {
	b.n.Negative = true
	return b
}

func (b *NumberBuilder) Build() *gs.Node {
	return b.n
}

// Alternatives implements goshape.Type.
func (b *NumberBuilder) Alternatives() []*gs.Node {
	return []*gs.Node{b.n}
}

// ---- boolean ----

type BoolBuilder struct{ n *gs.Node }

func Bool() *BoolBuilder {
	return &BoolBuilder{n: &gs.Node{Kind: gs.KindBool}}
}

func (b *BoolBuilder) Required() *BoolBuilder {
	b.n.Required = true
	return b
}

func (b *BoolBuilder) Nullable() *BoolBuilder {
	b.n.Nullable = true
	return b
}

func (b *BoolBuilder) Default(v any) *BoolBuilder {
	b.n.Default = v
	b.n.HasDefault = true
	return b
}

func (b *BoolBuilder) Build() *gs.Node {
	return b.n
}

// Alternatives implements goshape.Type.
func (b *BoolBuilder) Alternatives() []*gs.Node {
	return []*gs.Node{b.n}
}

// ---- date ----

type DateBuilder struct{ n *gs.Node }

func Date() *DateBuilder {
	return &DateBuilder{n: &gs.Node{Kind: gs.KindDate}}
}

func (b *DateBuilder) Required() *DateBuilder {
	b.n.Required = true
	return b
}

func (b *DateBuilder) Nullable() *DateBuilder {
	b.n.Nullable = true
	return b
}

func (b *DateBuilder) Default(v any) *DateBuilder {
	b.n.Default = v
	b.n.HasDefault = true
	return b
}

// Min sets the lower bound; ISO-8601 (RFC3339 or YYYY-MM-DD).
func (b *DateBuilder) Min(iso string) *DateBuilder {
	b.n.MinDate = iso
	return b
}

// Max sets the upper bound; ISO-8601 (RFC3339 or YYYY-MM-DD).
func (b *DateBuilder) Max(iso string) *DateBuilder {
	b.n.MaxDate = iso
	return b
}

func (b *DateBuilder) Build() *gs.Node {
	return b.n
}

// Alternatives implements goshape.Type.
func (b *DateBuilder) Alternatives() []*gs.Node {
	return []*gs.Node{b.n}
}

// ---- object ----

type ObjectBuilder struct{ n *gs.Node }

func Object() *ObjectBuilder {
	return &ObjectBuilder{n: &gs.Node{Kind: gs.KindObject, Properties: gs.Properties{}}}
}

// Field registers a property with its type.
func (b *ObjectBuilder) Field(name string, t gs.Type) *ObjectBuilder {
	b.n.Properties[name] = t
	return b
}

func (b *ObjectBuilder) Required() *ObjectBuilder {
	b.n.Required = true
	return b
}

func (b *ObjectBuilder) Nullable() *ObjectBuilder {
	b.n.Nullable = true
	return b
}

func (b *ObjectBuilder) Default(v any) *ObjectBuilder {
	b.n.Default = v
	b.n.HasDefault = true
	return b
}

func (b *ObjectBuilder) Build() *gs.Node {
	return b.n
}

// Alternatives implements goshape.Type.
func (b *ObjectBuilder) Alternatives() []*gs.Node {
	return []*gs.Node{b.n}
}

// ---- array ----

type ArrayBuilder struct{ n *gs.Node }

func Array(items gs.Type) *ArrayBuilder {
	return &ArrayBuilder{n: &gs.Node{Kind: gs.KindArray, Items: items}}
}

func (b *ArrayBuilder) Required() *ArrayBuilder {
	b.n.Required = true
	return b
}

func (b *ArrayBuilder) Nullable() *ArrayBuilder {
	b.n.Nullable = true
	return b
}

func (b *ArrayBuilder) Default(v any) *ArrayBuilder {
	b.n.Default = v
	b.n.HasDefault = true
	return b
}

func (b *ArrayBuilder) Min(n int) *ArrayBuilder {
	b.n.MinLen = intPtr(n)
	return b
}

func (b *ArrayBuilder) Max(n int) *ArrayBuilder {
	b.n.MaxLen = intPtr(n)
	return b
}

func (b *ArrayBuilder) Build() *gs.Node {
	return b.n
}

// Alternatives implements goshape.Type.
func (b *ArrayBuilder) Alternatives() []*gs.Node {
	return []*gs.Node{b.n}
}
