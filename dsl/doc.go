// Package dsl provides fluent builders for goshape schemas.
//
// Builders implement goshape.Type, so they can be written inline in a
// Properties literal without an explicit Build call:
//
//	s := goshape.Properties{
//		"name": dsl.String().Required().Min(1),
//		"age":  dsl.Number().Integer().Positive(),
//		"tags": dsl.Array(dsl.String().Lowercase()).Max(10),
//	}
//
// Field-level unions combine alternatives with OneOf:
//
//	"id": dsl.OneOf(dsl.String(), dsl.Number().Integer()),
package dsl
