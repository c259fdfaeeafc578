package encode

import (
	"strings"

	"github.com/arkadia-format/go-adf/ir"
)

// repeatHint trails the single example element in list blueprints.
const repeatHint = "... /* repeat pattern for additional items */"

// prompt renders the blueprint form: the schema expanded as a
// curly-brace template with one line per field, types spelled out and
// field comments kept. Data values are deliberately absent; the reader
// (usually an LLM) fills them in.
func (e *encState) prompt(n *ir.Node, indent int) string {
	s := n.Schema
	switch {
	case s != nil && s.IsList():
		return e.promptList(s, indent)
	case s != nil && s.IsRecord():
		return e.promptRecord(s, indent)
	case s != nil:
		return e.cType(s.TypeName)
	default:
		return e.cType("any")
	}
}

func (e *encState) promptRecord(s *ir.Schema, indent int) string {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxDepth {
		return "{}"
	}

	childIndent := indent + e.cfg.indent
	child := strings.Repeat(" ", childIndent)

	lines := make([]string, 0, s.NumFields())
	for _, f := range s.Fields() {
		line := child + e.cKey(f.Name) + ": " + e.promptType(f, childIndent)
		if cmt := e.promptComment(f); cmt != "" {
			line += " " + cmt
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return "{}"
	}
	return "{\n" + strings.Join(lines, ",\n") + "\n" + strings.Repeat(" ", indent) + "}"
}

func (e *encState) promptList(s *ir.Schema, indent int) string {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxDepth {
		return "[]"
	}

	childIndent := indent + e.cfg.indent
	child := strings.Repeat(" ", childIndent)

	element := "any"
	switch el := s.Element; {
	case el != nil && el.IsRecord() && el.NumFields() > 0:
		element = e.promptRecord(el, childIndent)
	case el != nil && el.IsList():
		element = e.promptList(el, childIndent)
	case el != nil:
		element = e.cType(el.TypeName)
	}

	return "[\n" + child + element + ",\n" + child + e.cNull(repeatHint) + "\n" +
		strings.Repeat(" ", indent) + "]"
}

// promptType renders a field's type slot: nested records and lists
// expand in place, primitives print their name.
func (e *encState) promptType(f *ir.Schema, indent int) string {
	switch {
	case f.IsRecord():
		return e.promptRecord(f, indent)
	case f.IsList():
		return e.promptList(f, indent)
	default:
		return e.cType(f.TypeName)
	}
}

func (e *encState) promptComment(f *ir.Schema) string {
	if !e.cfg.includeComments || len(f.Comments) == 0 {
		return ""
	}
	parts := make([]string, 0, len(f.Comments))
	for _, c := range f.Comments {
		parts = append(parts, e.cNull("/* "+strings.TrimSpace(c)+" */"))
	}
	return strings.Join(parts, " ")
}
