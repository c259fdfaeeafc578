package token

import (
	"strings"
	"testing"
)

func TestCursorAdvanceTracksPosition(t *testing.T) {
	c := NewCursor("ab\ncd")
	c.Advance(2)
	if p := c.Pos(); p.Line != 0 || p.Col != 2 || p.Offset != 2 {
		t.Errorf("pos = %+v", p)
	}
	c.Advance(1) // the newline
	if p := c.Pos(); p.Line != 1 || p.Col != 1 || p.Offset != 3 {
		t.Errorf("pos after newline = %+v", p)
	}
	c.Advance(10)
	if !c.EOF() {
		t.Error("expected EOF")
	}
	if c.Peek() != 0 {
		t.Error("Peek at EOF must be 0")
	}
}

func TestCursorSkipWhitespaceKeepsSlash(t *testing.T) {
	c := NewCursor("  \t\n/rest")
	c.SkipWhitespace()
	if c.Peek() != '/' {
		t.Errorf("Peek = %q", c.Peek())
	}
}

func TestPosContext(t *testing.T) {
	c := NewCursor(strings.Repeat("x", 40))
	c.Advance(20)
	p := c.Pos()
	if len(p.Context) != 21 {
		t.Errorf("context = %q (len %d)", p.Context, len(p.Context))
	}
	if !strings.Contains(p.String(), "offset 20") {
		t.Errorf("String = %q", p.String())
	}
}

func TestReadIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
		rest byte
	}{
		{"abc:", "abc", ':'},
		{"  a_b2 x", "a_b2", ' '},
		{"_x=", "_x", '='},
		{"1abc", "", '1'},
		{"", "", 0},
	}
	for _, tt := range tests {
		c := NewCursor(tt.in)
		if got := c.ReadIdent(); got != tt.want {
			t.Errorf("ReadIdent(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if c.Peek() != tt.rest {
			t.Errorf("ReadIdent(%q) left %q", tt.in, c.Peek())
		}
	}
}

func TestReadQuoted(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{`"hi"`, "hi", true},
		{`""`, "", true},
		{`"a\nb"`, "a\nb", true},
		{`"t\tr\rq\"s\\"`, "t\tr\rq\"s\\", true},
		{`"pass\qthrough"`, "passqthrough", true},
		{`"open`, "open", false},
	}
	for _, tt := range tests {
		c := NewCursor(tt.in)
		got, ok := c.ReadQuoted()
		if got != tt.want || ok != tt.ok {
			t.Errorf("ReadQuoted(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestReadNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		isFloat bool
	}{
		{"42,", "42", false},
		{"-7]", "-7", false},
		{"3.5 ", "3.5", true},
		{"1e3)", "1e3", true},
		{"-2.5E-4", "-2.5E-4", true},
	}
	for _, tt := range tests {
		c := NewCursor(tt.in)
		got, isFloat := c.ReadNumber()
		if got != tt.want || isFloat != tt.isFloat {
			t.Errorf("ReadNumber(%q) = %q, %v; want %q, %v", tt.in, got, isFloat, tt.want, tt.isFloat)
		}
	}
}

func TestStripANSI(t *testing.T) {
	in := "\x1b[92m\"hi\"\x1b[0m and \x1b[1;31mbold\x1b[0m"
	want := `"hi" and bold`
	if got := StripANSI(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := StripANSI("plain"); got != "plain" {
		t.Errorf("got %q", got)
	}
}
