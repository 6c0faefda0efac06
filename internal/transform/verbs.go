package transform

import (
	"sort"

	"github.com/mibar/jdt/internal/jsonpath"
	"github.com/mibar/jdt/internal/jsonpath/parser"
	"github.com/mibar/jdt/internal/jsonvalue"
)

// applyRemove implements "@jdt.remove": a verb value may be a single
// remove instruction or an array of them, applied in order.
func applyRemove(source *jsonvalue.Value, value jsonvalue.Value, isRoot bool) (control, error) {
	if arr, ok := value.([]jsonvalue.Value); ok {
		for _, el := range arr {
			ctrl, err := applyRemoveOne(source, el, isRoot)
			if err != nil {
				return continueTransform, err
			}
			if ctrl == haltTransform {
				return haltTransform, nil
			}
		}
		return continueTransform, nil
	}
	return applyRemoveOne(source, value, isRoot)
}

// applyRemoveOne handles the three remove forms: a bare key name, a bare
// boolean (true removes the whole current node), or an attributed
// selector object ("@jdt.path").
func applyRemoveOne(source *jsonvalue.Value, value jsonvalue.Value, isRoot bool) (control, error) {
	switch v := value.(type) {
	case string:
		obj, ok := (*source).(*jsonvalue.Object)
		if !ok {
			return continueTransform, &SourceNotObjectError{}
		}
		obj.Delete(v)
		return continueTransform, nil

	case bool:
		if !v {
			return continueTransform, nil
		}
		if isRoot {
			return continueTransform, &RootOperationNotAllowedError{}
		}
		*source = nil
		return haltTransform, nil

	case *jsonvalue.Object:
		sel, err := parseSelectorRequired(v)
		if err != nil {
			return continueTransform, err
		}
		paths := jsonpath.SelectPaths(*source, sel)
		if err := removePaths(source, paths, isRoot); err != nil {
			return continueTransform, err
		}
		return continueTransform, nil

	default:
		return continueTransform, &TransformNotObjectError{}
	}
}

// removePaths deletes every matched path from source, deepest first so
// that deleting one array element never shifts the index of another
// match still pending deletion.
func removePaths(source *jsonvalue.Value, paths []jsonvalue.Path, isRoot bool) error {
	sorted := make([]jsonvalue.Path, len(paths))
	copy(sorted, paths)
	sort.SliceStable(sorted, func(i, j int) bool {
		return removePathLess(sorted[i], sorted[j])
	})
	sorted = dedupPaths(sorted)

	for _, path := range sorted {
		if len(path) == 0 {
			if isRoot {
				return &RootOperationNotAllowedError{}
			}
			*source = nil
			continue
		}
		parentPath, last, _ := path.Last()
		parent, ok := jsonvalue.PtrAt(source, parentPath)
		if !ok {
			continue
		}
		switch p := (*parent).(type) {
		case *jsonvalue.Object:
			if last.IsKey {
				p.Delete(last.Key)
			}
		case []jsonvalue.Value:
			if !last.IsKey && last.Index < len(p) {
				*parent = append(p[:last.Index], p[last.Index+1:]...)
			}
		}
	}
	return nil
}

// removePathLess orders deeper paths first; at equal depth, array
// indices sort descending and object keys sort descending, so a
// removal never invalidates another removal's path before it runs.
func removePathLess(a, b jsonvalue.Path) bool {
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	if len(a) == 0 {
		return false
	}
	ai, bi := a[len(a)-1], b[len(b)-1]
	if !ai.IsKey && !bi.IsKey {
		return bi.Index < ai.Index
	}
	if ai.IsKey && bi.IsKey {
		return bi.Key < ai.Key
	}
	return false
}

func dedupPaths(paths []jsonvalue.Path) []jsonvalue.Path {
	out := paths[:0]
	for i, p := range paths {
		if i > 0 && p.Equal(paths[i-1]) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// applyReplace implements "@jdt.replace".
func applyReplace(source *jsonvalue.Value, value jsonvalue.Value, isRoot bool) (control, error) {
	if arr, ok := value.([]jsonvalue.Value); ok {
		for _, el := range arr {
			ctrl, err := applyReplaceOne(source, el, isRoot)
			if err != nil {
				return continueTransform, err
			}
			if ctrl == haltTransform {
				return haltTransform, nil
			}
		}
		return continueTransform, nil
	}
	return applyReplaceOne(source, value, isRoot)
}

func applyReplaceOne(source *jsonvalue.Value, value jsonvalue.Value, isRoot bool) (control, error) {
	if obj, ok := value.(*jsonvalue.Object); ok {
		if isAttributedCall(obj) {
			sel, err := parseSelectorRequired(obj)
			if err != nil {
				return continueTransform, err
			}
			replacement, has := obj.Get(attrValue)
			if !has {
				return continueTransform, &MissingAttributeError{Attr: attrValue}
			}
			return applyReplaceSelector(source, sel, replacement, isRoot)
		}
		// Bare object: replace the whole current node (root allowed).
		*source = jsonvalue.Clone(obj)
		return haltTransform, nil
	}

	if isRoot {
		return continueTransform, &RootOperationNotAllowedError{}
	}
	*source = jsonvalue.Clone(value)
	return haltTransform, nil
}

func applyReplaceSelector(source *jsonvalue.Value, sel *parser.Path, replacement jsonvalue.Value, isRoot bool) (control, error) {
	paths := jsonpath.SelectPaths(*source, sel)
	for _, path := range paths {
		if len(path) == 0 {
			_, replacementIsObject := replacement.(*jsonvalue.Object)
			if isRoot && !replacementIsObject {
				return continueTransform, &RootOperationNotAllowedError{}
			}
			*source = jsonvalue.Clone(replacement)
			return haltTransform, nil
		}
		parentPath, last, _ := path.Last()
		parent, ok := jsonvalue.PtrAt(source, parentPath)
		if !ok {
			continue
		}
		switch p := (*parent).(type) {
		case *jsonvalue.Object:
			if last.IsKey {
				p.Set(last.Key, jsonvalue.Clone(replacement))
			}
		case []jsonvalue.Value:
			if !last.IsKey && last.Index < len(p) {
				p[last.Index] = jsonvalue.Clone(replacement)
			}
		}
	}
	return continueTransform, nil
}

// applyRename implements "@jdt.rename": either a direct key-to-key
// mapping object, or an attributed selector with a string "@jdt.value"
// naming the new property name.
func applyRename(source *jsonvalue.Value, value jsonvalue.Value, isRoot bool) (control, error) {
	if arr, ok := value.([]jsonvalue.Value); ok {
		for _, el := range arr {
			if err := applyRenameOne(source, el); err != nil {
				return continueTransform, err
			}
		}
		return continueTransform, nil
	}
	if err := applyRenameOne(source, value); err != nil {
		return continueTransform, err
	}
	return continueTransform, nil
}

func applyRenameOne(source *jsonvalue.Value, value jsonvalue.Value) error {
	renameObj, ok := value.(*jsonvalue.Object)
	if !ok {
		return &TransformNotObjectError{}
	}

	if isAttributedCall(renameObj) {
		sel, err := parseSelectorRequired(renameObj)
		if err != nil {
			return err
		}
		newNameVal, has := renameObj.Get(attrValue)
		if !has {
			return &MissingAttributeError{Attr: attrValue}
		}
		newName, ok := newNameVal.(string)
		if !ok {
			return &AttributeNotStringError{Attr: attrValue}
		}
		paths := jsonpath.SelectPaths(*source, sel)
		for _, path := range paths {
			if err := renameAtPath(source, path, newName); err != nil {
				return err
			}
		}
		return nil
	}

	// Direct mapping form: {"oldKey": "newKey", ...}
	sourceObj, ok := (*source).(*jsonvalue.Object)
	if !ok {
		return &SourceNotObjectError{}
	}
	for _, old := range renameObj.Keys() {
		newNameVal, _ := renameObj.Get(old)
		newName, ok := newNameVal.(string)
		if !ok {
			return &AttributeNotStringError{Attr: attrValue}
		}
		sourceObj.Rename(old, newName)
	}
	return nil
}

func renameAtPath(source *jsonvalue.Value, path jsonvalue.Path, newName string) error {
	parentPath, last, ok := path.Last()
	if !ok {
		return &RenameNotPropertyError{}
	}
	parent, found := jsonvalue.PtrAt(source, parentPath)
	if !found {
		return nil
	}
	obj, isObj := (*parent).(*jsonvalue.Object)
	if !isObj || !last.IsKey {
		return &RenameNotPropertyError{}
	}
	obj.Rename(last.Key, newName)
	return nil
}

// applyMerge implements "@jdt.merge".
func applyMerge(source *jsonvalue.Value, value jsonvalue.Value, isRoot bool) (control, error) {
	if arr, ok := value.([]jsonvalue.Value); ok {
		for _, el := range arr {
			if err := applyMergeOne(source, el, isRoot); err != nil {
				return continueTransform, err
			}
		}
		return continueTransform, nil
	}
	if err := applyMergeOne(source, value, isRoot); err != nil {
		return continueTransform, err
	}
	return continueTransform, nil
}

func applyMergeOne(source *jsonvalue.Value, value jsonvalue.Value, isRoot bool) error {
	obj, ok := value.(*jsonvalue.Object)
	if !ok {
		if isRoot {
			return &RootOperationNotAllowedError{}
		}
		*source = jsonvalue.Clone(value)
		return nil
	}

	if isAttributedCall(obj) {
		sel, err := parseSelectorRequired(obj)
		if err != nil {
			return err
		}
		mergeValue, has := obj.Get(attrValue)
		if !has {
			return &MissingAttributeError{Attr: attrValue}
		}
		paths := jsonpath.SelectPaths(*source, sel)
		for _, path := range paths {
			if err := mergeAtPath(source, path, mergeValue, isRoot); err != nil {
				return err
			}
		}
		return nil
	}

	// No attributes: run a nested transform in place at this node.
	return process(source, obj, isRoot)
}

func mergeAtPath(source *jsonvalue.Value, path jsonvalue.Path, mergeValue jsonvalue.Value, isRoot bool) error {
	isDocRoot := isRoot && len(path) == 0
	if len(path) == 0 {
		return mergeIntoValue(source, mergeValue, isDocRoot)
	}
	parentPath, last, _ := path.Last()
	parent, ok := jsonvalue.PtrAt(source, parentPath)
	if !ok {
		return nil
	}
	switch p := (*parent).(type) {
	case *jsonvalue.Object:
		if !last.IsKey {
			return nil
		}
		target, has := p.ValuePtr(last.Key)
		if !has {
			return nil
		}
		return mergeIntoValue(target, mergeValue, false)
	case []jsonvalue.Value:
		if last.IsKey || last.Index >= len(p) {
			return nil
		}
		return mergeIntoValue(&p[last.Index], mergeValue, false)
	}
	return nil
}

// mergeIntoValue merges mergeValue into the value at *target: object
// into object recurses through process (so merge can itself carry
// verbs), array into array appends, and anything else overwrites —
// except at the document root, where overwriting a non-object is
// rejected the same way remove/replace reject it.
func mergeIntoValue(target *jsonvalue.Value, mergeValue jsonvalue.Value, isRoot bool) error {
	_, targetIsObj := (*target).(*jsonvalue.Object)
	mergeObj, mergeIsObj := mergeValue.(*jsonvalue.Object)
	if targetIsObj && mergeIsObj {
		return process(target, mergeObj, isRoot)
	}

	dst, dstIsArray := (*target).([]jsonvalue.Value)
	src, srcIsArray := mergeValue.([]jsonvalue.Value)
	if dstIsArray && srcIsArray {
		*target = append(dst, jsonvalue.Clone(src).([]jsonvalue.Value)...)
		return nil
	}

	if isRoot {
		return &RootOperationNotAllowedError{}
	}
	*target = jsonvalue.Clone(mergeValue)
	return nil
}

func parseSelectorRequired(obj *jsonvalue.Object) (*parser.Path, error) {
	pathVal, has := obj.Get(attrPath)
	if !has {
		return nil, &MissingAttributeError{Attr: attrPath}
	}
	pathStr, ok := pathVal.(string)
	if !ok {
		return nil, &AttributeNotStringError{Attr: attrPath}
	}
	sel, err := parser.Parse(pathStr)
	if err != nil {
		return nil, &PathError{Err: err}
	}
	return sel, nil
}

func isAttributedCall(obj *jsonvalue.Object) bool {
	return obj.Has(attrPath) || obj.Has(attrValue)
}
