package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// typeError reports that a Value was not the shape an operation required.
type typeError struct {
	want string
	got  Value
}

func (e *typeError) Error() string {
	return fmt.Sprintf("jsonvalue: expected %s, got %T", e.want, e.got)
}

// Equal reports deep structural equality. Object comparison ignores key
// order (JSON objects are semantically unordered; only MarshalJSON and
// the merge/default-overlay machinery care about insertion order).
// json.Number comparison is textual, matching the source's own
// tie-breaking (two numbers that render differently, e.g. "1.0" and "1",
// are not equal) rather than parsing both sides to float64 and losing
// precision.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for i, k := range av.keys {
			bval, has := bv.Get(k)
			if !has || !Equal(av.vals[i], bval) {
				return false
			}
		}
		return true
	case []Value:
		bv, ok := b.([]Value)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// marshalString re-encodes a Go string as a JSON string literal, reusing
// encoding/json's escaping rules without pulling in its object-ordering
// behavior.
func marshalString(s string) ([]byte, error) {
	return json.Marshal(s)
}

// Marshal renders a Value as JSON, preserving Object key order. encoding/
// json can't do this on its own since it only knows how to order
// map[string]any alphabetically; Object implements json.Marshaler so
// json.Marshal already does the right thing for values that contain one,
// but Marshal is provided as the single entry point the rest of the
// module calls so array-of-array-of-Object nesting is handled uniformly
// too.
func Marshal(v Value) ([]byte, error) {
	switch t := v.(type) {
	case *Object:
		return t.MarshalJSON()
	case []Value:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			eb, err := Marshal(e)
			if err != nil {
				return nil, err
			}
			buf.Write(eb)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return json.Marshal(t)
	}
}

// MarshalIndent renders v as pretty-printed JSON with the given prefix
// and indent, the same contract as encoding/json.MarshalIndent.
func MarshalIndent(v Value, prefix, indent string) ([]byte, error) {
	raw, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GetAt resolves path against root and returns the value found there.
// Returns ok=false if any step is missing — a miss is normal control
// flow here, never an error, matching the "missing data never errors"
// rule that governs path navigation throughout this engine.
func GetAt(root Value, path Path) (Value, bool) {
	cur := root
	for _, item := range path {
		if item.IsKey {
			obj, ok := cur.(*Object)
			if !ok {
				return nil, false
			}
			v, ok := obj.Get(item.Key)
			if !ok {
				return nil, false
			}
			cur = v
			continue
		}
		arr, ok := cur.([]Value)
		if !ok || item.Index < 0 || item.Index >= len(arr) {
			return nil, false
		}
		cur = arr[item.Index]
	}
	return cur, true
}

// PtrAt resolves path against root and returns a pointer to the slot
// holding the value, so a caller can overwrite it in place. This is the
// Go analogue of the Rust evaluator's `&mut Value` result: a slot
// reference rather than a copy, since the backing storage (Object's
// vals slice, or a []Value array) already owns addressable storage
// for its elements. Returns ok=false if any step is missing.
func PtrAt(root *Value, path Path) (slot *Value, ok bool) {
	cur := root
	for _, item := range path {
		if item.IsKey {
			obj, isObj := (*cur).(*Object)
			if !isObj {
				return nil, false
			}
			p, has := obj.ValuePtr(item.Key)
			if !has {
				return nil, false
			}
			cur = p
			continue
		}
		arr, isArr := (*cur).([]Value)
		if !isArr || item.Index < 0 || item.Index >= len(arr) {
			return nil, false
		}
		cur = &arr[item.Index]
	}
	return cur, true
}
