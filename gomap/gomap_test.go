package gomap

import (
	"errors"
	"testing"

	"github.com/arkadia-format/go-adf/encode"
	"github.com/arkadia-format/go-adf/ir"
)

func TestFromValueScalars(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		typeName string
		want     ir.Value
	}{
		{"nil", nil, "null", ir.Null()},
		{"string", "hi", "string", ir.String("hi")},
		{"bool", true, "bool", ir.Bool(true)},
		{"int", 42, "number", ir.Int(42)},
		{"int8", int8(-3), "number", ir.Int(-3)},
		{"uint16", uint16(7), "number", ir.Int(7)},
		{"int64", int64(1 << 40), "number", ir.Int(1 << 40)},
		{"float32", float32(0.5), "number", ir.Float(0.5)},
		{"float64", 2.5, "number", ir.Float(2.5)},
		{"ir value", ir.Bool(false), "bool", ir.Bool(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := FromValue(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if node.Value != tt.want {
				t.Errorf("value = %#v, want %#v", node.Value, tt.want)
			}
			if got := node.Schema.TypeName; got != tt.typeName {
				t.Errorf("type = %q, want %q", got, tt.typeName)
			}
		})
	}
}

func TestFromValuePointer(t *testing.T) {
	x := 5
	node, err := FromValue(&x)
	if err != nil {
		t.Fatal(err)
	}
	if node.Value != ir.Int(5) {
		t.Errorf("value = %#v", node.Value)
	}

	var p *int
	node, err = FromValue(p)
	if err != nil {
		t.Fatal(err)
	}
	if !node.Value.IsNull() {
		t.Errorf("nil pointer value = %#v", node.Value)
	}
}

func TestFromValueSlice(t *testing.T) {
	node, err := FromValue([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if !node.IsList() || len(node.Elements) != 3 {
		t.Fatalf("node = %v", node)
	}
	if got := node.Schema.Element.TypeName; got != "number" {
		t.Errorf("element type = %q", got)
	}
}

func TestFromValueEmptySlice(t *testing.T) {
	node, err := FromValue([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if !node.IsList() || len(node.Elements) != 0 {
		t.Fatalf("node = %v", node)
	}
	if got := node.Schema.Element.TypeName; got != "any" {
		t.Errorf("element type = %q", got)
	}
}

func TestFromValueRecordUnion(t *testing.T) {
	in := []map[string]any{
		{"id": 1},
		{"id": 2, "name": "x"},
	}
	node, err := FromValue(in)
	if err != nil {
		t.Fatal(err)
	}
	el := node.Schema.Element
	if !el.IsRecord() || el.NumFields() != 2 {
		t.Fatalf("element = %v", el)
	}
	// first occurrence fixes the position
	if got := el.FieldAt(0).Name; got != "id" {
		t.Errorf("field 0 = %q", got)
	}
	if got := el.FieldAt(1).Name; got != "name" {
		t.Errorf("field 1 = %q", got)
	}
}

func TestFromValueMapSorted(t *testing.T) {
	node, err := FromValue(map[string]any{"b": 2, "a": 1, "c": 3})
	if err != nil {
		t.Fatal(err)
	}
	got := encode.String(node, encode.Compact(true))
	want := `<a:number,b:number,c:number>(1,2,3)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFromValueNested(t *testing.T) {
	in := map[string]any{
		"id":   7,
		"tags": []string{"x", "y"},
	}
	node, err := FromValue(in)
	if err != nil {
		t.Fatal(err)
	}
	got := encode.String(node, encode.Compact(true))
	want := `<id:number,tags:[string]>(7,["x","y"])`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFromValueNodePassthrough(t *testing.T) {
	orig := ir.NewNode(ir.PrimitiveSchema("bool"))
	orig.Value = ir.Bool(true)
	node, err := FromValue(orig)
	if err != nil {
		t.Fatal(err)
	}
	if node != orig {
		t.Error("node was not passed through")
	}
}

func TestFromValueUnsupported(t *testing.T) {
	for _, in := range []any{make(chan int), func() {}, map[int]string{1: "x"}} {
		if _, err := FromValue(in); !errors.Is(err, ErrUnsupported) {
			t.Errorf("FromValue(%T) error = %v, want ErrUnsupported", in, err)
		}
	}
}
