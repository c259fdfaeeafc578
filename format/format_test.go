package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"a", ADFFormat},
		{"adf", ADFFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatBad(t *testing.T) {
	_, err := ParseFormat("xml")
	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("error = %v, want ErrBadFormat", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != f {
			t.Errorf("round trip %v -> %s -> %v", f, d, back)
		}
		if f.String() != string(d) {
			t.Errorf("String %q != text %q", f.String(), d)
		}
	}
}

func TestFormatSuffix(t *testing.T) {
	tests := []struct {
		f    Format
		want string
	}{
		{ADFFormat, ".adf"},
		{JSONFormat, ".json"},
		{YAMLFormat, ".yaml"},
	}
	for _, tt := range tests {
		if got := tt.f.Suffix(); got != tt.want {
			t.Errorf("%v.Suffix() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestFormatPredicates(t *testing.T) {
	if !ADFFormat.IsADF() || ADFFormat.IsJSON() || ADFFormat.IsYAML() {
		t.Error("ADFFormat predicates")
	}
	if !JSONFormat.IsJSON() || !YAMLFormat.IsYAML() {
		t.Error("JSON/YAML predicates")
	}
}
