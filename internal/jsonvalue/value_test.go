package jsonvalue

import "testing"

func mustDecode(t *testing.T, s string) Value {
	t.Helper()
	v, err := Decode([]byte(s))
	if err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return v
}

func TestGetAtObjectChain(t *testing.T) {
	v := mustDecode(t, `{"a":{"b":{"c":42}}}`)
	got, ok := GetAt(v, Path{Key("a"), Key("b"), Key("c")})
	if !ok {
		t.Fatal("expected path found")
	}
	if n, ok := got.(interface{ String() string }); ok && n.String() != "42" {
		t.Fatalf("unexpected value %v", got)
	}
}

func TestGetAtArrayIndex(t *testing.T) {
	v := mustDecode(t, `{"a":[10,20,30]}`)
	got, ok := GetAt(v, Path{Key("a"), Index(1)})
	if !ok {
		t.Fatal("expected path found")
	}
	if s, ok := got.(interface{ String() string }); ok && s.String() != "20" {
		t.Fatalf("unexpected value %v", got)
	}
}

func TestGetAtMissingReturnsNotOk(t *testing.T) {
	v := mustDecode(t, `{"a":1}`)
	_, ok := GetAt(v, Path{Key("b")})
	if ok {
		t.Fatal("expected missing key to report not ok")
	}
	_, ok = GetAt(v, Path{Key("a"), Key("c")})
	if ok {
		t.Fatal("expected descending into a scalar to report not ok")
	}
}

func TestPtrAtMutatesInPlace(t *testing.T) {
	var v Value = mustDecode(t, `{"a":{"b":1}}`)
	slot, ok := PtrAt(&v, Path{Key("a"), Key("b")})
	if !ok {
		t.Fatal("expected path found")
	}
	*slot = "changed"
	got, _ := GetAt(v, Path{Key("a"), Key("b")})
	if got != "changed" {
		t.Fatalf("expected mutation to stick, got %v", got)
	}
}

func TestPtrAtArrayElement(t *testing.T) {
	var v Value = mustDecode(t, `{"a":[1,2,3]}`)
	slot, ok := PtrAt(&v, Path{Key("a"), Index(2)})
	if !ok {
		t.Fatal("expected path found")
	}
	*slot = "x"
	got, _ := GetAt(v, Path{Key("a"), Index(2)})
	if got != "x" {
		t.Fatalf("expected mutation to stick, got %v", got)
	}
}

func TestEqualDeep(t *testing.T) {
	a := mustDecode(t, `{"a":1,"b":[1,2,{"c":true}]}`)
	b := mustDecode(t, `{"a":1,"b":[1,2,{"c":true}]}`)
	if !Equal(a, b) {
		t.Fatal("expected deep equal values to compare equal")
	}
	c := mustDecode(t, `{"a":1,"b":[1,2,{"c":false}]}`)
	if Equal(a, c) {
		t.Fatal("expected differing values to compare unequal")
	}
}

func TestEqualKeyOrderInsensitive(t *testing.T) {
	a := mustDecode(t, `{"a":1,"b":2}`)
	b := mustDecode(t, `{"b":2,"a":1}`)
	if !Equal(a, b) {
		t.Fatal("expected Equal to ignore key order")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	v := mustDecode(t, `{"z":1,"a":[1,2,3],"m":{"x":true}}`)
	out, err := Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":[1,2,3],"m":{"x":true}}`
	if string(out) != want {
		t.Fatalf("got %s, want %s", out, want)
	}
}
