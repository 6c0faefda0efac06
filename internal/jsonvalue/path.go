// Package jsonvalue holds the JSON value and path model shared by the
// JSONPath parser/evaluator and the transform interpreter: an order-
// preserving object type, and the Path/PathItem pair used to address a
// node without holding a direct reference to it.
package jsonvalue

import "fmt"

// Value is a JSON value: nil, bool, json.Number, string, []any, or *Object.
// It is kept as `any` rather than a closed sum type so it composes with
// encoding/json decode output; Decode (see decode.go) is the only
// constructor that guarantees these six shapes and no others.
type Value = any

// PathItem is a single step in a Path: either an object key or an array
// index. IsKey distinguishes the two; Go has no tagged union, so this is
// the idiomatic two-field stand-in.
type PathItem struct {
	Key   string
	Index int
	IsKey bool
}

// Key builds an object-key path item.
func Key(k string) PathItem { return PathItem{Key: k, IsKey: true} }

// Index builds an array-index path item. idx must already be normalized
// (non-negative, in range) — negative-index resolution happens where the
// item is produced, not here.
func Index(idx int) PathItem { return PathItem{Index: idx} }

func (p PathItem) String() string {
	if p.IsKey {
		return "." + p.Key
	}
	return fmt.Sprintf("[%d]", p.Index)
}

// Path is an ordered sequence of path items. The empty path denotes the
// root. Paths are values: comparable, sortable, safe to store and
// re-evaluate later, never references into a tree.
type Path []PathItem

func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	s := "$"
	for _, item := range p {
		s += item.String()
	}
	return s
}

// Last splits a non-empty path into its parent path and final item.
// Returns ok=false for the empty path.
func (p Path) Last() (parent Path, last PathItem, ok bool) {
	if len(p) == 0 {
		return nil, PathItem{}, false
	}
	return p[:len(p)-1], p[len(p)-1], true
}
