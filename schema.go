package goshape

// Kind identifies the concrete kind of a single schema node.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindDate
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Node is a single schema node: one concrete kind plus its rules. Only the
// fields matching Kind are consulted; the rest are ignored.
//
// A Node is read-only input for the duration of a validation call. The engine
// never mutates or retains it.
type Node struct {
	Kind     Kind
	Required bool
	Nullable bool

	// Default is injected for absent keys. HasDefault distinguishes an
	// explicit null default from no default at all.
	Default    any
	HasDefault bool

	// String rules. Trimming is on unless NoTrim is set; normalization order
	// is trim, then lowercase, then uppercase.
	Enum      []any
	Pattern   string
	MinLen    *int // string length / array element count
	MaxLen    *int
	NoTrim    bool
	Lowercase bool
	Uppercase bool

	// Number rules. Positive admits zero; Negative does not.
	Min      *float64
	Max      *float64
	Integer  bool
	Positive bool
	Negative bool

	// Date bounds, ISO-8601 (RFC3339 or YYYY-MM-DD).
	MinDate string
	MaxDate string

	// Object / array nesting.
	Properties Properties
	Items      Type
}

// Type is either a single *Node or a Union of candidate nodes for one field.
// Builders in the dsl package implement it as well, so they can be written
// inline in a Properties literal.
type Type interface {
	Alternatives() []*Node
}

// Alternatives implements Type for a single node.
func (n *Node) Alternatives() []*Node { return []*Node{n} }

// Union is a field-level union: the value may satisfy any one alternative.
// Resolution is structural; see Resolve.
type Union []*Node

// Alternatives implements Type.
func (u Union) Alternatives() []*Node { return u }

// Properties maps field names to their Type. It is the single top-level
// schema shape and also the property set of an object node.
type Properties map[string]Type

// Members implements Schema for a single shape.
func (p Properties) Members() []Properties { return []Properties{p} }

// Schema is the top-level schema: a single Properties mapping or an AnyOf
// union of full alternative shapes.
type Schema interface {
	Members() []Properties
}

// AnyOf is a schema union: the input must satisfy at least one member shape.
// Members are tried in declaration order; the first success wins.
type AnyOf []Properties

// Members implements Schema.
func (a AnyOf) Members() []Properties { return a }
