package goshape

import (
	"bytes"
	"context"

	gojson "github.com/goccy/go-json"
)

// DecodeJSON parses raw JSON into the any-shaped tree the engine validates:
// map[string]any, []any, string, json.Number, bool, nil. Numbers are kept as
// json.Number so no precision is lost before the number rules run.
func DecodeJSON(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeParseError, Rule: "base.parse", Message: err.Error(), Cause: err})
	}
	return v, nil
}

// ValidateJSON decodes data as JSON and validates it against s.
func ValidateJSON(ctx context.Context, s Schema, data []byte, opts ...Options) (any, error) {
	v, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Validate(ctx, s, v, opts...)
}

// EncodeJSON renders a normalized tree back to JSON. Map keys come out
// sorted; time.Time values produced by date coercion encode as RFC3339.
func EncodeJSON(v any) ([]byte, error) {
	return gojson.Marshal(v)
}
