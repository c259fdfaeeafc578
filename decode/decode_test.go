package decode

import (
	"strings"
	"testing"

	"github.com/arkadia-format/go-adf/ir"
)

func TestDecodePrimitives(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		typeName string
		want     ir.Value
	}{
		{"int", `42`, "number", ir.Int(42)},
		{"negative int", `-7`, "number", ir.Int(-7)},
		{"float", `3.5`, "float", ir.Float(3.5)},
		{"exponent", `1e3`, "float", ir.Float(1000)},
		{"string", `"hi"`, "string", ir.String("hi")},
		{"escapes", `"a\nb\"c"`, "string", ir.String("a\nb\"c")},
		{"true", `true`, "bool", ir.Bool(true)},
		{"false", `false`, "bool", ir.Bool(false)},
		{"null", `null`, "null", ir.Null()},
		{"raw string", `pending`, "string", ir.String("pending")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Decode(tt.in)
			if len(res.Errors) > 0 {
				t.Fatalf("errors: %v", res.Err())
			}
			if res.Node.Value != tt.want {
				t.Errorf("value = %#v, want %#v", res.Node.Value, tt.want)
			}
			if got := res.Node.Schema.TypeName; got != tt.typeName {
				t.Errorf("type = %q, want %q", got, tt.typeName)
			}
		})
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	res := Decode("")
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	if !res.Node.Value.IsNull() {
		t.Errorf("value = %#v, want null", res.Node.Value)
	}
	if res.Schema == nil || res.Schema.TypeName != "null" {
		t.Errorf("schema = %v", res.Schema)
	}
}

func TestDecodeSchemaContext(t *testing.T) {
	res := Decode(`<id: number, name: string> (1, "Admin")`)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	n := res.Node
	if !n.IsRecord() {
		t.Fatalf("node = %v", n)
	}
	if got := n.Field("id").Value; got != ir.Int(1) {
		t.Errorf("id = %#v", got)
	}
	if got := n.Field("name").Value; got != ir.String("Admin") {
		t.Errorf("name = %#v", got)
	}
	// value schemas keep the declared field types
	if got := n.Field("id").Schema.TypeName; got != "number" {
		t.Errorf("id schema = %q", got)
	}
}

func TestDecodeSchemaMismatchReplacesNodeSchema(t *testing.T) {
	res := Decode(`<tests: string> (3)`)
	if len(res.Errors) > 0 {
		t.Fatalf("mismatch must not error: %v", res.Err())
	}
	field := res.Node.Field("tests")
	if got := field.Schema.TypeName; got != "number" {
		t.Errorf("field schema = %q, want inferred %q", got, "number")
	}
	// the declared schema keeps saying string
	def, ok := res.Node.Schema.Field("tests")
	if !ok || def.TypeName != "string" {
		t.Errorf("declared field = %v", def)
	}
}

func TestDecodeNumberAcceptsFloat(t *testing.T) {
	res := Decode(`<n: number> (2.5)`)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	field := res.Node.Field("n")
	if got := field.Schema.TypeName; got != "number" {
		t.Errorf("field schema = %q, want %q (number absorbs floats)", got, "number")
	}
	if field.Value != ir.Float(2.5) {
		t.Errorf("value = %#v", field.Value)
	}
}

func TestDecodeListElementInference(t *testing.T) {
	res := Decode(`[1, 2, "x"]`)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	n := res.Node
	if !n.IsList() || len(n.Elements) != 3 {
		t.Fatalf("node = %v", n)
	}
	// first concrete element fixed the element type
	if got := n.Schema.Element.TypeName; got != "number" {
		t.Errorf("element type = %q, want %q", got, "number")
	}
	// the disagreeing element keeps its own schema
	if got := n.Elements[2].Schema.TypeName; got != "string" {
		t.Errorf("third element schema = %q, want %q", got, "string")
	}
}

func TestDecodePositionalOverflow(t *testing.T) {
	res := Decode(`<id: number> (1, "extra")`)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	n := res.Node
	if got := n.Schema.NumFields(); got != 2 {
		t.Fatalf("fields = %d, want 2", got)
	}
	f1 := n.Schema.FieldAt(1)
	if f1.Name != "_1" || f1.TypeName != "string" {
		t.Errorf("overflow field = %v", f1)
	}
	if got := n.Field("_1").Value; got != ir.String("extra") {
		t.Errorf("_1 = %#v", got)
	}
}

func TestDecodeNamedRecordInfersUnknownKeys(t *testing.T) {
	res := Decode(`<id: number> {id: 1, extra: true}`)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	f, ok := res.Node.Schema.Field("extra")
	if !ok || f.TypeName != "bool" {
		t.Errorf("inferred field = %v", f)
	}
}

func TestDecodeSelfSpecialization(t *testing.T) {
	res := Decode(`<ab> {ab: ["a", "b"]}`)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	f, ok := res.Node.Schema.Field("ab")
	if !ok {
		t.Fatal("field ab missing")
	}
	if !f.IsList() || f.Element == nil || f.Element.TypeName != "string" {
		t.Errorf("field did not specialize: %v", f)
	}
	// position preserved
	if res.Node.Schema.FieldAt(0) != f {
		t.Error("specialized field lost its position")
	}
}

func TestDecodeNamedSchemaSharing(t *testing.T) {
	res := Decode(`[@User<id: number>(1), @User(2, "x")]`)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	n := res.Node
	if len(n.Elements) != 2 {
		t.Fatalf("elements = %d", len(n.Elements))
	}
	// both elements share the registered schema object, so the field
	// inferred from the second element shows on the first as well
	if n.Elements[0].Schema != n.Elements[1].Schema {
		t.Error("elements do not share the named schema")
	}
	if got := n.Elements[0].Schema.NumFields(); got != 2 {
		t.Errorf("shared schema fields = %d, want 2", got)
	}
}

func TestDecodeForwardReference(t *testing.T) {
	res := Decode(`@Missing(5)`)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	s := res.Node.Schema
	if !s.IsRecord() || s.TypeName != "Missing" {
		t.Errorf("schema = %v", s)
	}
}

func TestDecodeWithSchemaOption(t *testing.T) {
	res := Decode(`(1, "x")`, WithSchema(`<id: number, name: string> `))
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	if got := res.Node.Field("name").Value; got != ir.String("x") {
		t.Errorf("name = %#v", got)
	}
}

func TestDecodeStripANSI(t *testing.T) {
	in := "\x1b[92m\"hi\"\x1b[0m"
	res := Decode(in, StripANSI(true))
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	if res.Node.Value != ir.String("hi") {
		t.Errorf("value = %#v", res.Node.Value)
	}
}

// =========================================================
// Errors and recovery
// =========================================================

func TestDecodeUnclosedList(t *testing.T) {
	res := Decode(`[1, 2, 3`)
	if len(res.Errors) == 0 {
		t.Fatal("expected errors")
	}
	if !strings.Contains(res.Errors[0].Message, "List not closed") {
		t.Errorf("message = %q", res.Errors[0].Message)
	}
	// parsed elements survive
	if got := len(res.Node.Elements); got != 3 {
		t.Errorf("elements = %d, want 3", got)
	}
}

func TestDecodeErrorCap(t *testing.T) {
	res := Decode("[" + strings.Repeat(";", MaxErrors+10) + "]")
	if got := len(res.Errors); got != MaxErrors {
		t.Errorf("errors = %d, want cap %d", got, MaxErrors)
	}
}

func TestDecodeUnterminatedString(t *testing.T) {
	res := Decode(`"abc`)
	if len(res.Errors) == 0 {
		t.Fatal("expected error")
	}
	// partial content is kept
	if res.Node.Value != ir.String("abc") {
		t.Errorf("value = %#v", res.Node.Value)
	}
}

func TestDecodeUnterminatedComment(t *testing.T) {
	res := Decode(`/* dangling`)
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e.Message, "Unterminated comment") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v", res.Errors)
	}
}

func TestDecodeErrorSnapshots(t *testing.T) {
	res := Decode(`<id: number> (1, ^)`)
	if len(res.Errors) == 0 {
		t.Fatal("expected error")
	}
	e := res.Errors[0]
	if e.Pos.Offset == 0 {
		t.Error("error has no position")
	}
	if e.Node == nil {
		t.Error("error has no node snapshot")
	}
	if e.Pos.Context == "" {
		t.Error("error has no context window")
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	res := Decode(strings.Repeat("[", MaxDepth+50))
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e.Message, "Nesting too deep") {
			found = true
		}
	}
	if !found {
		t.Error("expected nesting error")
	}
	if res.Node == nil {
		t.Error("deep input must still produce a node")
	}
}

// =========================================================
// Warnings
// =========================================================

func TestDecodeImplicitAttrWarning(t *testing.T) {
	res := Decode(`</ver=2/ id: number>(1)`)
	if len(res.Errors) > 0 {
		t.Fatalf("errors: %v", res.Err())
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected implicit attribute warning")
	}
	if !strings.Contains(res.Warnings[0].Message, "Implicit attribute") {
		t.Errorf("warning = %q", res.Warnings[0].Message)
	}
	v, ok := res.Node.Schema.Attr["ver"]
	if !ok || v != ir.Int(2) {
		t.Errorf("attr ver = %#v", v)
	}
}

func TestDecodeUnknownFlagWarning(t *testing.T) {
	res := Decode(`!frozen 5`)
	if len(res.Warnings) == 0 {
		t.Fatal("expected warning")
	}
	if !strings.Contains(res.Warnings[0].Message, "Unknown flag") {
		t.Errorf("warning = %q", res.Warnings[0].Message)
	}
}

func TestDecodeOrphanMetaBlockWarning(t *testing.T) {
	res := Decode(`/$a=1/ 5`)
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w.Message, "no parent") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v", res.Warnings)
	}
	// the block still lands on the next node via the pending buffer
	if v, ok := res.Node.Attr["a"]; !ok || v != ir.Int(1) {
		t.Errorf("attr a = %#v", v)
	}
}
