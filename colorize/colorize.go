// Package colorize adds ANSI colors to JSON text for terminal output.
// It is a byte scanner, not a parser; invalid JSON comes back colored
// best-effort instead of erroring.
package colorize

import (
	"strings"

	"github.com/fatih/color"
)

type palette struct {
	key  *color.Color
	str  *color.Color
	num  *color.Color
	lit  *color.Color
	null *color.Color
}

func newPalette() *palette {
	mk := func(attr color.Attribute) *color.Color {
		c := color.New(attr)
		c.EnableColor()
		return c
	}
	return &palette{
		key:  mk(color.FgHiYellow),
		str:  mk(color.FgHiGreen),
		num:  mk(color.FgHiBlue),
		lit:  mk(color.FgHiMagenta),
		null: mk(color.FgHiBlack),
	}
}

// JSON colors object keys, strings, numbers and literals. Structural
// punctuation stays uncolored.
func JSON(text string) string {
	p := newPalette()
	var b strings.Builder
	b.Grow(len(text) * 2)

	i := 0
	for i < len(text) {
		ch := text[i]
		switch {
		case ch == '"':
			lit, next := scanString(text, i)
			if isKey(text, next) {
				b.WriteString(p.key.Sprint(lit))
			} else {
				b.WriteString(p.str.Sprint(lit))
			}
			i = next
		case ch == '-' || ch >= '0' && ch <= '9':
			lit, next := scanNumber(text, i)
			b.WriteString(p.num.Sprint(lit))
			i = next
		case hasWordAt(text, i, "true"):
			b.WriteString(p.lit.Sprint("true"))
			i += 4
		case hasWordAt(text, i, "false"):
			b.WriteString(p.lit.Sprint("false"))
			i += 5
		case hasWordAt(text, i, "null"):
			b.WriteString(p.null.Sprint("null"))
			i += 4
		default:
			b.WriteByte(ch)
			i++
		}
	}
	return b.String()
}

func scanString(text string, start int) (string, int) {
	i := start + 1
	for i < len(text) {
		switch text[i] {
		case '\\':
			i += 2
			continue
		case '"':
			return text[start : i+1], i + 1
		}
		i++
	}
	return text[start:], len(text)
}

func scanNumber(text string, start int) (string, int) {
	i := start
	if text[i] == '-' {
		i++
	}
	for i < len(text) {
		ch := text[i]
		if ch >= '0' && ch <= '9' || ch == '.' || ch == 'e' || ch == 'E' || ch == '+' || ch == '-' {
			i++
			continue
		}
		break
	}
	return text[start:i], i
}

// isKey reports whether the next significant byte after a string is a
// colon.
func isKey(text string, i int) bool {
	for ; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

func hasWordAt(text string, i int, word string) bool {
	if !strings.HasPrefix(text[i:], word) {
		return false
	}
	end := i + len(word)
	if end < len(text) {
		ch := text[end]
		if ch == '_' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' {
			return false
		}
	}
	return true
}
