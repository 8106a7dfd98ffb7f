package goshape

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired     = "required"
	CodeNullable     = "nullable"
	CodeInvalidType  = "invalid_type"
	CodeInvalidEnum  = "invalid_enum"
	CodePattern      = "pattern"
	CodeTooShort     = "too_short" // string length / array count below min
	CodeTooLong      = "too_long"  // string length / array count above max
	CodeTooSmall     = "too_small" // number below min
	CodeTooBig       = "too_big"   // number above max
	CodeNotInteger   = "not_integer"
	CodeNotPositive  = "not_positive"
	CodeNotNegative  = "not_negative"
	CodeUnionNoMatch = "union_no_match"
	CodeParseError   = "parse_error"
)

// Issue represents a single validation violation.
type Issue struct {
	Path    string // Dotted/indexed path (for example: address.tags[0]).
	Code    string // One of the codes listed above.
	Message string
	// Rule records the message key that produced this issue, in
	// "category.rule" form (for example "string.min").
	Rule string
	// Params carries structured parameters (path, min, max, pattern, ...) so
	// callers can localize or re-render messages independently of the
	// expanded Message.
	Params map[string]any
	Cause  error // Optional: underlying error.
}

// Issues is a collection of validation violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		p := it.Path
		if p == "" {
			p = "(root)"
		}
		// e.g. invalid_type at address.tags[0]
		fmt.Fprintf(b, "%s at %s", it.Code, p)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// SchemaError reports a malformed schema (for example an invalid regexp
// source or an unparseable date bound). It is distinct from Issues: it means
// the schema author made a mistake, not that the input failed validation.
type SchemaError struct {
	Path string // Path of the node whose rules are malformed; "" for root.
	Err  error
}

func (e *SchemaError) Error() string {
	p := e.Path
	if p == "" {
		p = "(root)"
	}
	return fmt.Sprintf("goshape: invalid schema at %s: %v", p, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
