package encode

import (
	"strings"
	"testing"

	"github.com/arkadia-format/go-adf/decode"
	"github.com/arkadia-format/go-adf/ir"
	"github.com/arkadia-format/go-adf/token"
)

// reencode is the usual test path: parse a document, render it back
// with the given options.
func reencode(t *testing.T, text string, opts ...Option) *ir.Node {
	t.Helper()
	res := decode.Decode(text)
	if len(res.Errors) > 0 {
		t.Fatalf("decode %q: %v", text, res.Err())
	}
	return res.Node
}

func TestEncodePrettyRecord(t *testing.T) {
	node := reencode(t, `<id: number, name: string> (1, "Admin")`)
	got := String(node)
	want := "< id:number, name:string >\n(1, \"Admin\")"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodePrettyList(t *testing.T) {
	node := reencode(t, `[1, 2]`)
	got := String(node)
	want := "<[number]>\n[\n  1\n  2\n]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeCompactList(t *testing.T) {
	node := reencode(t, `[1, 2]`)
	got := String(node, Compact(true))
	want := `<[number]>[1,2]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeIndentOption(t *testing.T) {
	node := reencode(t, `[1]`)
	got := String(node, Indent(4))
	want := "<[number]>\n[\n    1\n]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeWithoutSchema(t *testing.T) {
	node := reencode(t, `<id: number, name: string> (1, "Admin")`)
	got := String(node, WithSchema(false), Compact(true))
	want := `(1,"Admin")`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeWithoutType(t *testing.T) {
	node := reencode(t, `<id: number> (1)`)
	got := String(node, WithType(false), Compact(true))
	want := `<id>(1)`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeWithoutComments(t *testing.T) {
	node := reencode(t, `<number> /* hi */ 123`)
	got := String(node, Comments(false), Compact(true))
	want := `<number>123`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeWithoutMeta(t *testing.T) {
	node := reencode(t, `$a=1 #b "x"`)
	got := String(node, WithMeta(false), Compact(true))
	want := `<string>"x"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeArraySize(t *testing.T) {
	node := reencode(t, `[1, 2]`)
	got := String(node, ArraySize(true))
	want := "<[number]>\n[$size=2:\n  1\n  2\n]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeEscapeNewlines(t *testing.T) {
	node := reencode(t, `"a\nb"`)

	got := String(node, Compact(true))
	if want := "<string>\"a\nb\""; got != want {
		t.Errorf("default: got %q, want %q", got, want)
	}

	got = String(node, Compact(true), EscapeNewlines(true))
	if want := `<string>"a\nb"`; got != want {
		t.Errorf("escaped: got %q, want %q", got, want)
	}
}

func TestEncodeColorize(t *testing.T) {
	node := reencode(t, `@User<id: number> @User(1)`)
	plain := String(node, Compact(true))
	colored := String(node, Compact(true), Colorize(true))
	if colored == plain {
		t.Error("colorized output has no escape codes")
	}
	if got := token.StripANSI(colored); got != plain {
		t.Errorf("stripped = %q, want %q", got, plain)
	}
}

func TestEncodeOverrideTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"float under number", `<n: number> (2.5)`, `<n:number>(2.5)`},
		{"number under string", `<n: string> (3)`, `<n:string>(<number> 3)`},
		{"list element drift", `<[string]> ["a", 3]`, `<[string]>["a",<number> 3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := reencode(t, tt.in)
			if got := String(node, Compact(true)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeListOfRecordsSchema(t *testing.T) {
	node := reencode(t, `<[id: number]> [(1), (2)]`)
	got := String(node, Compact(true))
	want := `<[id:number]>[(1),(2)]`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSchemaString(t *testing.T) {
	node := reencode(t, `<id: number, name: string> (1, "x")`)
	got := SchemaString(node.Schema, Compact(true))
	want := `<id:number,name:string>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMustString(t *testing.T) {
	node := reencode(t, `5`)
	got := MustString(node)
	want := "<number>\n5"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeRecursiveSchemaTerminates(t *testing.T) {
	s := ir.NewSchema(ir.Record, "A")
	s.AddField(ir.NamedField("self", s))
	node := ir.NewNode(s)

	// must return, not recurse forever
	if got := SchemaString(s); got == "" {
		t.Error("empty schema string")
	}
	if got := String(node, PromptOutput(true)); got == "" {
		t.Error("empty prompt output")
	}
}

func TestEncodeWriter(t *testing.T) {
	node := reencode(t, `true`)
	var sb strings.Builder
	if err := Encode(node, &sb, Compact(true)); err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); got != `<bool>true` {
		t.Errorf("got %q", got)
	}
}
