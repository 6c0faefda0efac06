package transform

import "fmt"

// TransformNotObjectError reports that a transform document, or a value
// appearing where one was required, was not a JSON object.
type TransformNotObjectError struct{}

func (e *TransformNotObjectError) Error() string { return "transform must be a JSON object" }

// SourceNotObjectError reports that the source document, or the node a
// verb was about to operate on, was not a JSON object.
type SourceNotObjectError struct{}

func (e *SourceNotObjectError) Error() string { return "source must be a JSON object" }

// PathError wraps a JSONPath parse or evaluation failure encountered
// while reading an "@jdt.path" attribute.
type PathError struct {
	Err error
}

func (e *PathError) Error() string { return fmt.Sprintf("invalid jsonpath: %s", e.Err) }
func (e *PathError) Unwrap() error { return e.Err }

// MissingAttributeError reports that an attributed verb call ("@jdt.path"
// / "@jdt.value") omitted a required attribute.
type MissingAttributeError struct {
	Attr string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("missing required attribute: %s", e.Attr)
}

// AttributeNotStringError reports that an attribute that must hold a
// string (a JSONPath, or a rename target) held some other JSON type.
type AttributeNotStringError struct {
	Attr string
}

func (e *AttributeNotStringError) Error() string {
	return fmt.Sprintf("attribute must be string: %s", e.Attr)
}

// RenameNotPropertyError reports that a rename selector resolved to the
// document root or an array element, neither of which has a property
// name that can be changed.
type RenameNotPropertyError struct{}

func (e *RenameNotPropertyError) Error() string {
	return "rename target is not a property (cannot rename root/array element)"
}

// RootOperationNotAllowedError reports an attempt to remove, or replace
// or merge with a non-object, the document root itself.
type RootOperationNotAllowedError struct{}

func (e *RootOperationNotAllowedError) Error() string {
	return "cannot remove/replace root with this operation"
}

// UnknownVerbError reports an "@jdt."-prefixed key that names none of
// the four known verbs. process never actually constructs this today:
// isJDTSyntax treats any "@jdt."-prefixed key as reserved syntax and
// simply skips it rather than rejecting it — but the type is kept so a
// future caller can opt into strict verb checking.
type UnknownVerbError struct {
	Verb string
}

func (e *UnknownVerbError) Error() string { return fmt.Sprintf("unknown @jdt verb: %s", e.Verb) }
