package parser

import "testing"

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("")
	if _, ok := err.(*EmptyError); !ok {
		t.Fatalf("expected EmptyError, got %v", err)
	}
}

func TestParseWhitespaceOnly(t *testing.T) {
	_, err := Parse("   ")
	if _, ok := err.(*EmptyError); !ok {
		t.Fatalf("expected EmptyError, got %v", err)
	}
}

func TestParseBOMOnly(t *testing.T) {
	_, err := Parse("\xef\xbb\xbf")
	if _, ok := err.(*EmptyError); !ok {
		t.Fatalf("expected EmptyError, got %v", err)
	}
}

func TestParseLeadingAt(t *testing.T) {
	_, err := Parse("@.foo")
	if _, ok := err.(*UnsupportedError); !ok {
		t.Fatalf("expected UnsupportedError, got %v", err)
	}
}

func TestParseUnterminatedBracket(t *testing.T) {
	_, err := Parse("$.foo[")
	if _, ok := err.(*InvalidError); !ok {
		t.Fatalf("expected InvalidError, got %v", err)
	}
}

func TestParseMissingCloseBracket(t *testing.T) {
	_, err := Parse("$.foo[0")
	if _, ok := err.(*InvalidError); !ok {
		t.Fatalf("expected InvalidError, got %v", err)
	}
}

func TestParseUnexpectedChar(t *testing.T) {
	_, err := Parse("$!foo")
	if _, ok := err.(*InvalidError); !ok {
		t.Fatalf("expected InvalidError, got %v", err)
	}
}

func TestParseEmptyNameAfterDot(t *testing.T) {
	_, err := Parse("$.")
	if _, ok := err.(*InvalidError); !ok {
		t.Fatalf("expected InvalidError, got %v", err)
	}
}

func TestParseFilterMissingAt(t *testing.T) {
	_, err := Parse("$.arr[?(foo)]")
	if _, ok := err.(*UnsupportedError); !ok {
		t.Fatalf("expected UnsupportedError, got %v", err)
	}
}

func TestParseFilterMissingParen(t *testing.T) {
	_, err := Parse("$.arr[?@.foo]")
	if _, ok := err.(*InvalidError); !ok {
		t.Fatalf("expected InvalidError, got %v", err)
	}
}

func TestParseTooDeep(t *testing.T) {
	raw := "$"
	for i := 0; i < 300; i++ {
		raw += ".a"
	}
	_, err := Parse(raw)
	if _, ok := err.(*TooDeepError); !ok {
		t.Fatalf("expected TooDeepError, got %v", err)
	}
}

func TestParseBOMPrefixStripped(t *testing.T) {
	p, err := Parse("\xef\xbb\xbf$.foo")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Segments) != 1 || p.Segments[0].Key != "foo" {
		t.Fatalf("unexpected segments: %+v", p.Segments)
	}
}

func TestParseDollarOnlyHasNoSegments(t *testing.T) {
	p, err := Parse("$")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Segments) != 0 {
		t.Fatalf("expected no segments, got %+v", p.Segments)
	}
	if !p.Absolute {
		t.Fatal("expected absolute")
	}
}

func TestParseRelativeNotAbsolute(t *testing.T) {
	p, err := Parse("foo.bar")
	if err != nil {
		t.Fatal(err)
	}
	if p.Absolute {
		t.Fatal("expected relative path")
	}
	if len(p.Segments) != 2 || p.Segments[0].Key != "foo" || p.Segments[1].Key != "bar" {
		t.Fatalf("unexpected segments: %+v", p.Segments)
	}
}

func TestParseUnionIndicesSegment(t *testing.T) {
	p, err := Parse("$.arr[0,2]")
	if err != nil {
		t.Fatal(err)
	}
	seg := p.Segments[1]
	if seg.Kind != IndexSeg || len(seg.Indices) != 2 || seg.Indices[0] != 0 || seg.Indices[1] != 2 {
		t.Fatalf("unexpected segment: %+v", seg)
	}
}

func TestParseFilterEqualsString(t *testing.T) {
	p, err := Parse(`$.arr[?(@.type == "book")]`)
	if err != nil {
		t.Fatal(err)
	}
	seg := p.Segments[1]
	if seg.Kind != FilterSeg || seg.Filter.Key != "type" || seg.Filter.Op != OpEquals || seg.Filter.Value != "book" {
		t.Fatalf("unexpected segment: %+v", seg)
	}
}
