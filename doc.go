// Package goshape validates JSON-like values against declarative schemas and
// returns a normalized copy of the input:
//
//   - A schema is plain data: Properties maps field names to a Type, a Type
//     is a single Node or a structural Union, and AnyOf expresses
//     whole-schema unions tried in declaration order.
//   - Validation never mutates the caller's value; it deep-copies, seeds
//     absent declared keys, walks every path, and applies per-kind rules with
//     in-place normalization (trim/case, date coercion, default injection).
//   - Errors surface as Issues (path, code, message, params) or, for
//     malformed schemas, as *SchemaError.
//
// Design policy:
//
//   - Keep the engine and public data model in the root package; put builders
//     under dsl/, message templates under i18n/, export under jsonschema/ and
//     gen/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := goshape.Properties{
//		"name": dsl.String().Required().Min(1),
//		"tags": dsl.Array(dsl.String().Lowercase()),
//	}
//	out, err := goshape.ValidateJSON(ctx, s, data)
//	out, err = goshape.Validate(ctx, s, value, goshape.Options{CollectAll: true})
package goshape
