package encode

import (
	"strconv"
	"strings"

	"github.com/arkadia-format/go-adf/ir"
)

// list renders [ ... ]. Compact mode is a single line; pretty mode puts
// each element on its own line at one extra indent level. Elements
// whose schema disagrees with the declared element type get an
// override tag.
func (e *encState) list(n *ir.Node, indent int) string {
	ind := strings.Repeat(" ", indent)
	childIndent := indent + e.cfg.indent

	innerMeta := e.metaWrapped(&n.Meta, false)

	var expected *ir.Schema
	if n.Schema != nil {
		expected = n.Schema.Element
	}

	if e.cfg.compact {
		items := make([]string, 0, len(n.Elements))
		for _, el := range n.Elements {
			val := strings.TrimSpace(e.encode(el, 0, false))
			val = e.applyTypeTag(val, el.Schema, expected)
			items = append(items, val)
		}
		return ind + "[" + innerMeta + strings.Join(items, ",") + "]"
	}

	out := []string{ind + e.listHeader(n)}
	if innerMeta != "" {
		out = append(out, strings.Repeat(" ", childIndent)+innerMeta)
	}
	for _, el := range n.Elements {
		val := strings.TrimSpace(e.encode(el, childIndent-e.cfg.startIndent, false))
		val = e.applyTypeTag(val, el.Schema, expected)
		out = append(out, strings.Repeat(" ", childIndent)+val)
	}
	out = append(out, ind+"]")
	return strings.Join(out, "\n")
}

func (e *encState) listHeader(n *ir.Node) string {
	header := "["
	if e.cfg.includeSize {
		header += e.cKey("$size") + "=" + e.cNumber(strconv.Itoa(len(n.Elements))) + e.cType(":")
	}
	return header
}

// record renders ( ... ). Records encode positionally in schema field
// order, whatever bracket form they were written in; unbound fields
// render as null.
func (e *encState) record(n *ir.Node, indent int) string {
	innerMeta := e.metaWrapped(&n.Meta, false)

	var parts []string
	if n.Schema != nil && n.Schema.NumFields() > 0 {
		for _, fieldDef := range n.Schema.Fields() {
			fieldNode := n.Field(fieldDef.Name)
			if fieldNode == nil {
				parts = append(parts, e.cNull("null"))
				continue
			}
			val := strings.TrimSpace(e.encode(fieldNode, indent-e.cfg.startIndent, false))
			parts = append(parts, e.applyTypeTag(val, fieldNode.Schema, fieldDef))
		}
	} else {
		parts = append(parts, e.cNull("null"))
	}

	sep := ", "
	if e.cfg.compact {
		sep = ","
	}
	return "(" + innerMeta + strings.Join(parts, sep) + ")"
}
