package goshape_test

import (
	"testing"

	goshape "github.com/goshape/goshape"
	"github.com/goshape/goshape/dsl"
)

func addressSchema() goshape.Properties {
	return goshape.Properties{
		"name": dsl.String().Required(),
		"address": dsl.Object().
			Field("zip_code", dsl.String().Pattern(`^\d{5}$`)).
			Field("tags", dsl.Array(dsl.String())),
		"id": dsl.OneOf(dsl.String(), dsl.Number().Integer()),
	}
}

func TestLocate_NestedObjectAndArray(t *testing.T) {
	s := addressSchema()

	n := goshape.Locate(s, []string{"address", "zip_code"}, "12345")
	if n == nil || n.Kind != goshape.KindString || n.Pattern == "" {
		t.Fatalf("unexpected node: %+v", n)
	}

	n = goshape.Locate(s, []string{"address", "tags", "0"}, "x")
	if n == nil || n.Kind != goshape.KindString {
		t.Fatalf("unexpected node for array element: %+v", n)
	}

	// A non-index key under an array node resolves nothing.
	if goshape.Locate(s, []string{"address", "tags", "first"}, nil) != nil {
		t.Fatalf("expected not-found for non-index key under array")
	}
}

func TestLocate_FieldUnionResolvesAgainstObserved(t *testing.T) {
	s := addressSchema()

	n := goshape.Locate(s, []string{"id"}, "abc")
	if n == nil || n.Kind != goshape.KindString {
		t.Fatalf("expected string branch, got %+v", n)
	}
	n = goshape.Locate(s, []string{"id"}, 42)
	if n == nil || n.Kind != goshape.KindNumber {
		t.Fatalf("expected number branch, got %+v", n)
	}
}

func TestLocate_NotFoundIsNil(t *testing.T) {
	s := addressSchema()
	if goshape.Locate(s, []string{"nope"}, nil) != nil {
		t.Fatalf("expected nil for undeclared key")
	}
	if goshape.Locate(s, []string{"name", "deeper"}, nil) != nil {
		t.Fatalf("expected nil when descending past a scalar node")
	}
}

func TestLocate_SchemaUnionTriesMembersInOrder(t *testing.T) {
	u := goshape.AnyOf{
		goshape.Properties{"a": dsl.String()},
		goshape.Properties{"b": dsl.Number()},
	}
	n := goshape.Locate(u, []string{"b"}, 1)
	if n == nil || n.Kind != goshape.KindNumber {
		t.Fatalf("expected number node from second member, got %+v", n)
	}
}
