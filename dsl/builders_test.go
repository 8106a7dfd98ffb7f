package dsl_test

import (
	"testing"

	goshape "github.com/goshape/goshape"
	"github.com/goshape/goshape/dsl"
)

func TestStringBuilder(t *testing.T) {
	n := dsl.String().Required().Lowercase().Enum("a", "b").Min(1).Max(3).Build()
	if n.Kind != goshape.KindString || !n.Required || !n.Lowercase {
		t.Fatalf("unexpected node: %+v", n)
	}
	if len(n.Enum) != 2 || *n.MinLen != 1 || *n.MaxLen != 3 {
		t.Fatalf("unexpected rules: %+v", n)
	}
}

func TestDefaultTracksPresence(t *testing.T) {
	n := dsl.String().Default(nil).Build()
	if !n.HasDefault || n.Default != nil {
		t.Fatalf("explicit null default must be distinguishable from no default: %+v", n)
	}
	if dsl.String().Build().HasDefault {
		t.Fatalf("no default was set")
	}
}

func TestObjectBuilderFields(t *testing.T) {
	n := dsl.Object().
		Field("name", dsl.String().Required()).
		Field("age", dsl.Number().Integer()).
		Build()
	if n.Kind != goshape.KindObject || len(n.Properties) != 2 {
		t.Fatalf("unexpected node: %+v", n)
	}
	alts := n.Properties["name"].Alternatives()
	if len(alts) != 1 || !alts[0].Required {
		t.Fatalf("field builder not captured: %+v", alts)
	}
}

func TestArrayBuilderItems(t *testing.T) {
	n := dsl.Array(dsl.Number().Positive()).Min(1).Build()
	if n.Kind != goshape.KindArray || n.Items == nil || *n.MinLen != 1 {
		t.Fatalf("unexpected node: %+v", n)
	}
	if alts := n.Items.Alternatives(); len(alts) != 1 || !alts[0].Positive {
		t.Fatalf("item type not captured: %+v", n.Items)
	}
}

func TestOneOfFlattens(t *testing.T) {
	u := dsl.OneOf(dsl.String(), dsl.OneOf(dsl.Number(), dsl.Bool()))
	alts := u.Alternatives()
	if len(alts) != 3 {
		t.Fatalf("nested unions must flatten, got %d alternatives", len(alts))
	}
	if alts[0].Kind != goshape.KindString || alts[1].Kind != goshape.KindNumber || alts[2].Kind != goshape.KindBool {
		t.Fatalf("declaration order lost: %+v", alts)
	}
}

func TestBuildersImplementType(t *testing.T) {
	// Builders drop straight into Properties without calling Build.
	s := goshape.Properties{
		"name": dsl.String(),
		"age":  dsl.Number(),
	}
	if len(s.Members()) != 1 {
		t.Fatalf("unexpected members: %+v", s.Members())
	}
	if alts := s["name"].Alternatives(); len(alts) != 1 || alts[0].Kind != goshape.KindString {
		t.Fatalf("builder must satisfy the Type interface: %+v", alts)
	}
}
