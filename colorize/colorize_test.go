package colorize

import (
	"strings"
	"testing"

	"github.com/arkadia-format/go-adf/token"
)

func TestJSONPreservesText(t *testing.T) {
	inputs := []string{
		`{"a": 1, "b": "two", "c": [true, false, null]}`,
		"{\n  \"nested\": {\"x\": -1.5e3}\n}",
		`["plain", "strings"]`,
		`truebad nulled`, // identifiers that merely contain keywords
		`{"esc": "a\"b"}`,
	}
	for _, in := range inputs {
		if got := token.StripANSI(JSON(in)); got != in {
			t.Errorf("stripped = %q, want %q", got, in)
		}
	}
}

func TestJSONColorsApplied(t *testing.T) {
	out := JSON(`{"a": "b"}`)
	if out == `{"a": "b"}` {
		t.Fatal("no colors applied")
	}
	// keys and value strings use different colors
	if !strings.Contains(out, "\x1b[93m\"a\"") {
		t.Errorf("key not hi-yellow: %q", out)
	}
	if !strings.Contains(out, "\x1b[92m\"b\"") {
		t.Errorf("string not hi-green: %q", out)
	}
}

func TestJSONKeywordBoundaries(t *testing.T) {
	// "nullable" must not be colored as null + "able"
	out := token.StripANSI(JSON(`{"k": nullable}`))
	if out != `{"k": nullable}` {
		t.Errorf("got %q", out)
	}
	// a bare keyword still colors
	if JSON(`null`) == `null` {
		t.Error("bare null not colored")
	}
}
