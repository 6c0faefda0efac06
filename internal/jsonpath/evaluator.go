// Package jsonpath evaluates the restricted JSONPath dialect parsed by
// internal/jsonpath/parser against a jsonvalue.Value tree, producing the
// concrete jsonvalue.Path list of every match.
//
// Evaluation is iterative, segment by segment: starting from the single
// path "root itself", each segment expands the current set of candidate
// paths into the next. A segment that finds nothing for a candidate
// simply drops it — a miss is normal control flow here, never an error.
package jsonpath

import (
	"github.com/mibar/jdt/internal/jsonpath/parser"
	"github.com/mibar/jdt/internal/jsonvalue"
)

// Select parses raw and evaluates it against root, returning every
// matching path. Filters yield array elements in positional order and
// object values in insertion order; a union of indices yields its paths
// in the order the indices were written, duplicates included.
func Select(root jsonvalue.Value, raw string) ([]jsonvalue.Path, error) {
	p, err := parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	return SelectPaths(root, p), nil
}

// SelectPaths evaluates an already-parsed path against root.
func SelectPaths(root jsonvalue.Value, p *parser.Path) []jsonvalue.Path {
	current := []jsonvalue.Path{{}}

	for _, seg := range p.Segments {
		var next []jsonvalue.Path
		for _, path := range current {
			node, ok := jsonvalue.GetAt(root, path)
			if !ok {
				continue
			}
			next = append(next, expandSegment(seg, path, node)...)
		}
		current = next
	}

	return current
}

func expandSegment(seg parser.Segment, path jsonvalue.Path, node jsonvalue.Value) []jsonvalue.Path {
	switch seg.Kind {
	case parser.Child:
		obj, ok := node.(*jsonvalue.Object)
		if !ok || !obj.Has(seg.Key) {
			return nil
		}
		return []jsonvalue.Path{appendItem(path, jsonvalue.Key(seg.Key))}

	case parser.IndexSeg:
		arr, ok := node.([]jsonvalue.Value)
		if !ok {
			return nil
		}
		var out []jsonvalue.Path
		for _, raw := range seg.Indices {
			i, ok := normalizeIndex(raw, len(arr))
			if !ok {
				continue
			}
			out = append(out, appendItem(path, jsonvalue.Index(i)))
		}
		return out

	case parser.FilterSeg:
		switch n := node.(type) {
		case []jsonvalue.Value:
			var out []jsonvalue.Path
			for i, el := range n {
				if filterMatches(seg.Filter, el) {
					out = append(out, appendItem(path, jsonvalue.Index(i)))
				}
			}
			return out
		case *jsonvalue.Object:
			var out []jsonvalue.Path
			n.Range(func(k string, v jsonvalue.Value) bool {
				if filterMatches(seg.Filter, v) {
					out = append(out, appendItem(path, jsonvalue.Key(k)))
				}
				return true
			})
			return out
		default:
			return nil
		}
	}
	return nil
}

func appendItem(path jsonvalue.Path, item jsonvalue.PathItem) jsonvalue.Path {
	out := make(jsonvalue.Path, len(path)+1)
	copy(out, path)
	out[len(path)] = item
	return out
}

// normalizeIndex resolves a possibly-negative index against length, with
// no wraparound: an index must name exactly one position within bounds,
// or the segment simply contributes nothing.
func normalizeIndex(index, length int) (int, bool) {
	if index >= 0 {
		if index < length {
			return index, true
		}
		return 0, false
	}
	abs := -index
	if abs <= length {
		return length - abs, true
	}
	return 0, false
}

func filterMatches(f *parser.Filter, candidate jsonvalue.Value) bool {
	obj, ok := candidate.(*jsonvalue.Object)
	if !ok {
		return false
	}
	v, present := obj.Get(f.Key)
	if !present {
		return false
	}
	switch f.Op {
	case parser.OpExists:
		return v != nil
	case parser.OpEquals:
		return jsonvalue.Equal(v, f.Value)
	}
	return false
}
