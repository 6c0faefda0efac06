// Package transform applies a JDT transform document to a source JSON
// document: an object of reserved "@jdt.remove/replace/rename/merge"
// verbs plus plain keys that default-merge into the source, recursing
// into nested objects before any verb or merge runs at that level.
package transform

import (
	"strings"

	"github.com/mibar/jdt/internal/jsonvalue"
)

const (
	verbRemove  = "@jdt.remove"
	verbReplace = "@jdt.replace"
	verbRename  = "@jdt.rename"
	verbMerge   = "@jdt.merge"

	attrPath  = "@jdt.path"
	attrValue = "@jdt.value"

	jdtPrefix = "@jdt."
)

// control signals whether process should keep applying this transform
// node's remaining steps (Continue) or stop immediately (Halt) — plain
// data, not a panic/exception, since halting is routine control flow
// (e.g. a bare-boolean remove or a whole-object replace already produced
// the final value for this node).
type control int

const (
	continueTransform control = iota
	haltTransform
)

// Apply applies transform to source and returns the transformed
// document. source is never mutated; Apply clones it first.
func Apply(source, transformDoc jsonvalue.Value) (jsonvalue.Value, error) {
	out := jsonvalue.Clone(source)
	if err := process(&out, transformDoc, true); err != nil {
		return nil, err
	}
	return out, nil
}

// process applies one transform node to the value at *source. isRoot is
// true only when *source is the document root (the outermost call, and a
// merge that runs a nested transform at the root), since several verbs
// forbid removing or non-object-replacing the document root.
func process(source *jsonvalue.Value, transformDoc jsonvalue.Value, isRoot bool) error {
	transformObj, ok := transformDoc.(*jsonvalue.Object)
	if !ok {
		return &TransformNotObjectError{}
	}
	sourceObj, ok := (*source).(*jsonvalue.Object)
	if !ok {
		return &SourceNotObjectError{}
	}

	// 1) Recurse into object-valued non-verb keys whose source
	// counterpart also exists and is an object, before any verb runs.
	recursed := make(map[string]bool)
	for _, k := range transformObj.Keys() {
		if isJDTSyntax(k) {
			continue
		}
		v, _ := transformObj.Get(k)
		if _, isObj := v.(*jsonvalue.Object); !isObj {
			continue
		}
		childPtr, has := sourceObj.ValuePtr(k)
		if !has {
			continue
		}
		if _, isChildObj := (*childPtr).(*jsonvalue.Object); !isChildObj {
			continue
		}
		if err := process(childPtr, v, false); err != nil {
			return err
		}
		recursed[k] = true
	}

	// 2) Verbs, in fixed order: remove, replace, rename, merge.
	if v, has := transformObj.Get(verbRemove); has {
		ctrl, err := applyRemove(source, v, isRoot)
		if err != nil {
			return err
		}
		if ctrl == haltTransform {
			return nil
		}
	}

	if v, has := transformObj.Get(verbReplace); has {
		ctrl, err := applyReplace(source, v, isRoot)
		if err != nil {
			return err
		}
		if ctrl == haltTransform {
			return nil
		}
	}

	if v, has := transformObj.Get(verbRename); has {
		ctrl, err := applyRename(source, v, isRoot)
		if err != nil {
			return err
		}
		if ctrl == haltTransform {
			return nil
		}
	}

	if v, has := transformObj.Get(verbMerge); has {
		ctrl, err := applyMerge(source, v, isRoot)
		if err != nil {
			return err
		}
		if ctrl == haltTransform {
			return nil
		}
	}

	// 3) Default: merge every remaining plain key into source, skipping
	// keys already handled by the recursion step above.
	defaultTransform(source, transformObj, recursed)
	return nil
}

// defaultTransform merges transformObj's non-verb, non-recursed keys
// into the object at *source. An existing array-valued key is extended
// with the transform's array rather than replaced, so repeated partial
// transforms can accumulate list entries; everything else overwrites.
func defaultTransform(source *jsonvalue.Value, transformObj *jsonvalue.Object, recursed map[string]bool) {
	sourceObj, ok := (*source).(*jsonvalue.Object)
	if !ok {
		return
	}

	for _, k := range transformObj.Keys() {
		if isJDTSyntax(k) || recursed[k] {
			continue
		}
		v, _ := transformObj.Get(k)

		existingPtr, has := sourceObj.ValuePtr(k)
		if !has {
			sourceObj.Set(k, jsonvalue.Clone(v))
			continue
		}

		dst, dstIsArray := (*existingPtr).([]jsonvalue.Value)
		src, srcIsArray := v.([]jsonvalue.Value)
		if dstIsArray && srcIsArray {
			*existingPtr = append(dst, jsonvalue.Clone(src).([]jsonvalue.Value)...)
			continue
		}
		*existingPtr = jsonvalue.Clone(v)
	}
}

// isJDTSyntax reports whether k is a reserved "@jdt."-prefixed key: one
// of the four verbs, an attribute key, or any other "@jdt."-prefixed
// name (reserved for future syntax, so it's excluded from the default
// merge even though nothing currently acts on it).
func isJDTSyntax(k string) bool {
	return strings.HasPrefix(k, jdtPrefix)
}
