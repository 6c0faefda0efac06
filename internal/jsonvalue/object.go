package jsonvalue

import "bytes"

// Object is an insertion-ordered string-keyed map — the order-preserving
// stand-in for a JSON object. Go's map[string]any has no defined iteration
// order, and object key order must be observable on both read and write, so
// every JSON object in this engine is represented by one of these instead.
//
// An index map plus a backing slice gives O(1) lookup while the slice gives
// stable iteration and preserves first-insertion order across Set/Delete.
type Object struct {
	idx  map[string]int
	keys []string
	vals []Value
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{idx: make(map[string]int)}
}

// Len reports the number of keys.
func (o *Object) Len() int { return len(o.keys) }

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.idx[key]
	return ok
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.idx[key]
	if !ok {
		return nil, false
	}
	return o.vals[i], true
}

// ValuePtr returns a pointer to the stored value for key, allowing
// in-place mutation without a Set/Get round trip. The pointer is only
// valid until the next Set call that adds a new key (which may grow the
// backing slice); callers use it and discard it within a single operation.
func (o *Object) ValuePtr(key string) (*Value, bool) {
	i, ok := o.idx[key]
	if !ok {
		return nil, false
	}
	return &o.vals[i], true
}

// Set inserts or overwrites key. New keys are appended, preserving
// insertion order; existing keys keep their position.
func (o *Object) Set(key string, v Value) {
	if o.idx == nil {
		o.idx = make(map[string]int)
	}
	if i, ok := o.idx[key]; ok {
		o.vals[i] = v
		return
	}
	o.idx[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Delete removes key if present, shifting later entries left to keep
// insertion order contiguous. No-op if key is absent.
func (o *Object) Delete(key string) {
	i, ok := o.idx[key]
	if !ok {
		return
	}
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
	o.vals = append(o.vals[:i], o.vals[i+1:]...)
	delete(o.idx, key)
	for k, v := range o.idx {
		if v > i {
			o.idx[k] = v - 1
		}
	}
}

// Rename moves the value stored at old to new, preserving old's position.
// No-op if old is absent; overwrites any existing value at new.
func (o *Object) Rename(old, new string) {
	i, ok := o.idx[old]
	if !ok {
		return
	}
	if old == new {
		return
	}
	if j, exists := o.idx[new]; exists && j != i {
		// new already names a different slot: drop it, then retarget old's slot.
		o.Delete(new)
		i = o.idx[old]
	}
	delete(o.idx, old)
	o.keys[i] = new
	o.idx[new] = i
}

// Keys returns the keys in insertion order. Callers must not mutate the
// returned slice.
func (o *Object) Keys() []string { return o.keys }

// Range calls fn for every key/value pair in insertion order, stopping
// early if fn returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	for i, k := range o.keys {
		if !fn(k, o.vals[i]) {
			return
		}
	}
}

// Clone returns a deep copy: nested Objects and arrays are cloned
// recursively, scalars are copied by value.
func (o *Object) Clone() *Object {
	out := &Object{
		idx:  make(map[string]int, len(o.idx)),
		keys: make([]string, len(o.keys)),
		vals: make([]Value, len(o.vals)),
	}
	copy(out.keys, o.keys)
	for k, v := range o.idx {
		out.idx[k] = v
	}
	for i, v := range o.vals {
		out.vals[i] = Clone(v)
	}
	return out
}

// MarshalJSON writes the object with keys in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := marshalString(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := Marshal(o.vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes data into the object, preserving source key order.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := Decode(data)
	if err != nil {
		return err
	}
	obj, ok := v.(*Object)
	if !ok {
		return &typeError{want: "object", got: v}
	}
	*o = *obj
	return nil
}

// Clone deep-copies any Value: Objects and arrays recursively, scalars by
// value. Used by Apply to take the mutable working copy of the source.
func Clone(v Value) Value {
	switch t := v.(type) {
	case *Object:
		return t.Clone()
	case []Value:
		out := make([]Value, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	default:
		return v
	}
}
