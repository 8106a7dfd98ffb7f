package goshape_test

import (
	"testing"
	"time"

	goshape "github.com/goshape/goshape"
)

func TestResolve_NullPrefersNullable(t *testing.T) {
	a := &goshape.Node{Kind: goshape.KindString}
	b := &goshape.Node{Kind: goshape.KindNumber, Nullable: true}
	got := goshape.Resolve([]*goshape.Node{a, b}, nil)
	if got != b {
		t.Fatalf("expected nullable candidate, got %+v", got)
	}
}

func TestResolve_StructuralMatch(t *testing.T) {
	str := &goshape.Node{Kind: goshape.KindString}
	num := &goshape.Node{Kind: goshape.KindNumber}
	arr := &goshape.Node{Kind: goshape.KindArray}
	obj := &goshape.Node{Kind: goshape.KindObject}
	date := &goshape.Node{Kind: goshape.KindDate}
	all := []*goshape.Node{num, arr, obj, str}

	if got := goshape.Resolve(all, "hi"); got != str {
		t.Fatalf("string value resolved to %v", got.Kind)
	}
	if got := goshape.Resolve(all, 3.5); got != num {
		t.Fatalf("number value resolved to %v", got.Kind)
	}
	if got := goshape.Resolve(all, []any{1}); got != arr {
		t.Fatalf("slice value resolved to %v", got.Kind)
	}
	if got := goshape.Resolve(all, map[string]any{}); got != obj {
		t.Fatalf("map value resolved to %v", got.Kind)
	}
	// A date candidate accepts both strings and native time values.
	if got := goshape.Resolve([]*goshape.Node{num, date}, "2024-01-01"); got != date {
		t.Fatalf("date string resolved to %v", got.Kind)
	}
	if got := goshape.Resolve([]*goshape.Node{num, date}, time.Now()); got != date {
		t.Fatalf("time.Time resolved to %v", got.Kind)
	}
}

func TestResolve_DeclarationOrderWins(t *testing.T) {
	// A date candidate also matches plain strings; whichever comes first wins.
	date := &goshape.Node{Kind: goshape.KindDate}
	str := &goshape.Node{Kind: goshape.KindString}
	if got := goshape.Resolve([]*goshape.Node{date, str}, "hello"); got != date {
		t.Fatalf("expected first matching candidate, got %v", got.Kind)
	}
	if got := goshape.Resolve([]*goshape.Node{str, date}, "hello"); got != str {
		t.Fatalf("expected first matching candidate, got %v", got.Kind)
	}
}

func TestResolve_FallbackToFirst(t *testing.T) {
	a := &goshape.Node{Kind: goshape.KindNumber}
	b := &goshape.Node{Kind: goshape.KindBool}
	if got := goshape.Resolve([]*goshape.Node{a, b}, "no match"); got != a {
		t.Fatalf("expected fallback to first candidate, got %v", got.Kind)
	}
	if goshape.Resolve(nil, "x") != nil {
		t.Fatalf("expected nil for empty candidate set")
	}
}
