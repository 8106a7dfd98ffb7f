package goshape_test

import (
	"testing"

	goshape "github.com/goshape/goshape"
	"github.com/goshape/goshape/dsl"
)

func TestJSONSchema_ObjectMapping(t *testing.T) {
	s := goshape.Properties{
		"name": dsl.String().Required().Min(1).Max(50).Pattern("^[a-z]+$"),
		"age":  dsl.Number().Integer().Positive(),
		"born": dsl.Date(),
		"ok":   dsl.Bool(),
		"tags": dsl.Array(dsl.String()).Max(10),
	}
	out, err := goshape.JSONSchema(s)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Type != "object" {
		t.Fatalf("unexpected root type: %q", out.Type)
	}
	if out.AdditionalProperties != true {
		t.Fatalf("unknown keys are retained by default: %#v", out.AdditionalProperties)
	}
	if len(out.Required) != 1 || out.Required[0] != "name" {
		t.Fatalf("unexpected required list: %v", out.Required)
	}

	name := out.Properties["name"]
	if name.Type != "string" || *name.MinLength != 1 || *name.MaxLength != 50 || name.Pattern != "^[a-z]+$" {
		t.Fatalf("unexpected string mapping: %+v", name)
	}
	age := out.Properties["age"]
	if age.Type != "integer" {
		t.Fatalf("integer rule must narrow the type: %+v", age)
	}
	if age.Minimum == nil || *age.Minimum != 0 {
		t.Fatalf("positive must impose a zero minimum: %+v", age)
	}
	born := out.Properties["born"]
	if born.Type != "string" || born.Format != "date-time" {
		t.Fatalf("unexpected date mapping: %+v", born)
	}
	tags := out.Properties["tags"]
	if tags.Type != "array" || tags.Items.Type != "string" || *tags.MaxItems != 10 {
		t.Fatalf("unexpected array mapping: %+v", tags)
	}
}

func TestJSONSchema_NullableAndDefault(t *testing.T) {
	s := goshape.Properties{
		"nick": dsl.String().Nullable(),
		"role": dsl.String().Default("user"),
	}
	out, err := goshape.JSONSchema(s)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	nick := out.Properties["nick"]
	if len(nick.OneOf) != 2 || nick.OneOf[0].Type != "string" || nick.OneOf[1].Type != "null" {
		t.Fatalf("nullable must expand to a null branch: %+v", nick)
	}
	if out.Properties["role"].Default != "user" {
		t.Fatalf("default not exported: %+v", out.Properties["role"])
	}
}

func TestJSONSchema_Unions(t *testing.T) {
	s := goshape.Properties{
		"id": dsl.OneOf(dsl.String(), dsl.Number()),
	}
	out, err := goshape.JSONSchema(s)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	id := out.Properties["id"]
	if len(id.OneOf) != 2 || id.OneOf[0].Type != "string" || id.OneOf[1].Type != "number" {
		t.Fatalf("unexpected field union mapping: %+v", id)
	}

	u := goshape.AnyOf{
		goshape.Properties{"name": dsl.String()},
		goshape.Properties{"count": dsl.Number()},
	}
	root, err := goshape.JSONSchema(u)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(root.OneOf) != 2 || root.OneOf[0].Type != "object" || root.OneOf[1].Type != "object" {
		t.Fatalf("unexpected schema union mapping: %+v", root)
	}
}

func TestJSONSchema_StripUnknownClosesObject(t *testing.T) {
	s := goshape.Properties{"name": dsl.String()}
	out, err := goshape.JSONSchema(s, goshape.Options{StripUnknown: true})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.AdditionalProperties != false {
		t.Fatalf("strip_unknown must close the object: %#v", out.AdditionalProperties)
	}
}
