package jsonvalue

import (
	"encoding/json"
	"testing"
)

func TestDecodeObjectPreservesOrder(t *testing.T) {
	v, err := Decode([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatal(err)
	}
	obj, ok := v.(*Object)
	if !ok {
		t.Fatalf("expected *Object, got %T", v)
	}
	want := []string{"z", "a", "m"}
	got := obj.Keys()
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("got keys %v, want %v", got, want)
		}
	}
}

func TestDecodeNestedStructure(t *testing.T) {
	v, err := Decode([]byte(`{"a":[1,2,{"b":true,"c":null}],"d":"x"}`))
	if err != nil {
		t.Fatal(err)
	}
	obj := v.(*Object)
	a, ok := obj.Get("a")
	if !ok {
		t.Fatal("expected key a")
	}
	arr, ok := a.([]Value)
	if !ok || len(arr) != 3 {
		t.Fatalf("expected array of 3, got %v", a)
	}
	inner, ok := arr[2].(*Object)
	if !ok {
		t.Fatalf("expected object at arr[2], got %T", arr[2])
	}
	b, _ := inner.Get("b")
	if b != true {
		t.Fatalf("expected b=true, got %v", b)
	}
	c, ok := inner.Get("c")
	if !ok || c != nil {
		t.Fatalf("expected c=nil present, got %v ok=%v", c, ok)
	}
}

func TestDecodeNumberPreservesLiteral(t *testing.T) {
	v, err := Decode([]byte(`{"n":1.50}`))
	if err != nil {
		t.Fatal(err)
	}
	obj := v.(*Object)
	n, _ := obj.Get("n")
	num, ok := n.(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %T", n)
	}
	if num.String() != "1.50" {
		t.Fatalf("expected literal 1.50 preserved, got %s", num.String())
	}
}

func TestDecodeStripsBOM(t *testing.T) {
	data := append([]byte(bom), []byte(`{"a":1}`)...)
	v, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	obj := v.(*Object)
	if !obj.Has("a") {
		t.Fatal("expected a present after stripping BOM")
	}
}

func TestDecodeTrailingDataErrors(t *testing.T) {
	_, err := Decode([]byte(`{"a":1} garbage`))
	if err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestDecodeEmptyArrayAndObject(t *testing.T) {
	v, err := Decode([]byte(`{"a":[],"b":{}}`))
	if err != nil {
		t.Fatal(err)
	}
	obj := v.(*Object)
	a, _ := obj.Get("a")
	if arr, ok := a.([]Value); !ok || len(arr) != 0 {
		t.Fatalf("expected empty array, got %v", a)
	}
	b, _ := obj.Get("b")
	if bo, ok := b.(*Object); !ok || bo.Len() != 0 {
		t.Fatalf("expected empty object, got %v", b)
	}
}
