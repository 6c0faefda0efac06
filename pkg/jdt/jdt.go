// Package jdt applies JSON Document Transform documents to JSON
// documents: an object of reserved "@jdt.remove/replace/rename/merge"
// verbs plus plain keys that default-merge into the source, evaluated
// against a restricted JSONPath dialect (dotted children, index/union
// selectors, existence/equality filters — no wildcards, recursive
// descent, slices, scripts, or functions).
//
// Basic usage:
//
//	out, err := jdt.Apply(source, transform)
//
// Pretty-printed output, for tooling that shells out to this package:
//
//	out, err := jdt.ApplyPretty(source, transform, "  ")
package jdt

import (
	"github.com/mibar/jdt/internal/jsonvalue"
	"github.com/mibar/jdt/internal/transform"
)

// Apply parses source and transform as JSON, applies transform to
// source, and returns the resulting document as compact JSON. Key order
// within objects is preserved from source, and from transform for any
// keys transform introduces.
func Apply(source, transformDoc []byte) ([]byte, error) {
	result, err := applyDecoded(source, transformDoc)
	if err != nil {
		return nil, err
	}
	return jsonvalue.Marshal(result)
}

// ApplyPretty is Apply, but indents the result with the given indent
// string (encoding/json.MarshalIndent with an empty line prefix).
func ApplyPretty(source, transformDoc []byte, indent string) ([]byte, error) {
	result, err := applyDecoded(source, transformDoc)
	if err != nil {
		return nil, err
	}
	return jsonvalue.MarshalIndent(result, "", indent)
}

func applyDecoded(source, transformDoc []byte) (jsonvalue.Value, error) {
	src, err := jsonvalue.Decode(source)
	if err != nil {
		return nil, err
	}
	tr, err := jsonvalue.Decode(transformDoc)
	if err != nil {
		return nil, err
	}
	return transform.Apply(src, tr)
}

// IsValidJSON reports whether data parses as a single JSON value with no
// trailing data.
func IsValidJSON(data []byte) bool {
	_, err := jsonvalue.Decode(data)
	return err == nil
}

// Validate reports whether transformDoc is at least structurally usable
// as a transform document: valid JSON, and a top-level object (every
// verb and the default-merge path both require that). It does not catch
// every error Apply can still return — a bad "@jdt.path" selector or a
// missing "@jdt.value" attribute only surfaces once Apply walks that
// part of the document — so a transform passing Validate can still fail
// Apply.
func Validate(transformDoc []byte) error {
	v, err := jsonvalue.Decode(transformDoc)
	if err != nil {
		return err
	}
	if _, ok := v.(*jsonvalue.Object); !ok {
		return &transform.TransformNotObjectError{}
	}
	return nil
}

// StripBOM removes a leading UTF-8 byte-order mark from s, if present.
func StripBOM(s string) string {
	return jsonvalue.StripBOM(s)
}
