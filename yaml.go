package goshape

import (
	"context"

	"gopkg.in/yaml.v3"
)

// ValidateYAML decodes data as YAML and validates it against s. YAML
// mappings decode to map[string]any, so config blobs flow through the same
// engine as JSON payloads; whole numbers arrive as int and are accepted by
// the number rules as-is.
func ValidateYAML(ctx context.Context, s Schema, data []byte, opts ...Options) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, AppendIssues(nil, Issue{Code: CodeParseError, Rule: "base.parse", Message: err.Error(), Cause: err})
	}
	return Validate(ctx, s, v, opts...)
}
