package parser

// ast.go defines the Abstract Syntax Tree for the restricted JSONPath
// dialect this engine supports: an optional "$" root, dotted children,
// a single index or comma-separated union of indices in brackets, and
// an existence or equality filter. Wildcards, recursive descent, slices,
// scripts, and functions are not part of this grammar — Segment has no
// field to represent them.

// SegmentKind distinguishes the three segment shapes this dialect knows;
// a single index and a union of indices share IndexSeg.
type SegmentKind int

const (
	// Child selects a single object key: ".name".
	Child SegmentKind = iota
	// IndexSeg selects one or more array indices: "[0]" or "[0,-1,2]".
	IndexSeg
	// FilterSeg selects array elements, or object values, matching a
	// filter: "[?(@.key)]".
	FilterSeg
)

// Segment is one step of a parsed Path.
type Segment struct {
	Kind    SegmentKind
	Key     string  // set when Kind == Child
	Indices []int   // set when Kind == IndexSeg; len 1 for a bare index
	Filter  *Filter // set when Kind == FilterSeg
}

// FilterOp is the comparison a Filter performs.
type FilterOp int

const (
	// OpExists matches elements where the relative path resolves to any
	// value other than null; a present-but-null value counts as absent.
	OpExists FilterOp = iota
	// OpEquals matches elements where the relative path resolves to a value
	// deep-equal to Value. A missing path never matches (Exists and Equals
	// both exclude elements where the relative lookup fails).
	OpEquals
)

// Filter is a "[?(@.key)]" or "[?(@.key==literal)]" predicate. The
// dialect allows exactly one identifier after "@." — "@.a.b" naming a
// nested field is not supported, matching the grammar this engine
// targets.
type Filter struct {
	Key   string
	Op    FilterOp
	Value any // literal operand for OpEquals: nil, bool, json.Number, or string
}

// Path is a fully parsed JSONPath expression.
type Path struct {
	Absolute bool // true if the raw string began with "$"
	Segments []Segment
	Raw      string
}
