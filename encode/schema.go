package encode

import (
	"strings"

	"github.com/arkadia-format/go-adf/ir"
)

// encodeSchema renders a schema header. Records come back as
// [@Name]<fields>, lists and primitives come back bare; the caller
// wraps bare forms in <> when using them as a header.
func (e *encState) encodeSchema(s *ir.Schema, indent int, includeMeta bool) string {
	if s == nil {
		return ""
	}
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxDepth {
		return ""
	}

	ind := strings.Repeat(" ", indent)
	pad := e.pad()

	prefix := ""
	if s.TypeName != "" && s.Kind == ir.Record && !s.IsAny() {
		prefix = e.cSchema("@" + s.TypeName)
	}

	if s.IsPrimitive() {
		meta := ""
		if includeMeta {
			meta = e.metaInline(&s.Meta, s.Required)
		}
		if meta != "" {
			meta += " "
		}
		return ind + meta + e.cType(s.TypeName)
	}

	if s.IsList() {
		// Element metadata renders on the list header, mirroring how
		// the decoder hoists it when the list schema context pops.
		if s.Element != nil {
			s.ApplyMetaOf(s.Element)
			s.Element.ClearMeta()
		}
		listMeta := ""
		if includeMeta {
			listMeta = e.metaWrapped(&s.Meta, s.Required)
		}

		// List of records renders its element fields inline: <[ id: int ]>.
		if s.Element != nil && s.Element.IsRecord() {
			inner := e.schemaFields(s.Element)
			return ind + prefix + "<" + pad + "[" + listMeta + inner + pad + "]" + pad + ">"
		}

		inner := strings.TrimSpace(e.encodeSchema(s.Element, 0, false))
		return ind + "[" + listMeta + e.cType(inner) + "]"
	}

	if s.IsRecord() {
		recordMeta := ""
		if includeMeta {
			recordMeta = e.metaWrapped(&s.Meta, s.Required)
		}

		if s.NumFields() == 0 {
			// A fully generic record renders as nothing at all; "<>"
			// before "{...}" would be noise.
			if prefix == "" && recordMeta == "" && s.IsAny() {
				return ""
			}
			return ind + prefix + "<" + pad + recordMeta + "any" + pad + ">"
		}

		inner := e.schemaFields(s)
		return ind + prefix + "<" + pad + recordMeta + inner + pad + ">"
	}

	meta := ""
	if includeMeta {
		meta = e.metaWrapped(&s.Meta, s.Required)
	}
	return ind + "<" + meta + "any>"
}

// schemaFields renders a record's field list:
// /* comment */ !required $attr=val #tag name:type, ...
func (e *encState) schemaFields(s *ir.Schema) string {
	pad := e.pad()
	parts := make([]string, 0, s.NumFields())

	for _, f := range s.Fields() {
		var fieldParts []string

		if meta := e.metaInline(&f.Meta, f.Required); meta != "" {
			fieldParts = append(fieldParts, meta)
		}
		fieldParts = append(fieldParts, e.cKey(f.Name))

		fieldType := strings.TrimSpace(e.encodeSchema(f, 0, false))

		// Structures always print their signature; primitives only when
		// concrete and type output is on.
		isStructure := !f.IsPrimitive()
		isExplicitPrimitive := e.cfg.includeType && f.TypeName != "any"
		if fieldType != "" && (isStructure || isExplicitPrimitive) {
			last := len(fieldParts) - 1
			fieldParts[last] += ":" + e.cType(fieldType)
		}

		parts = append(parts, strings.Join(fieldParts, " "))
	}

	return strings.Join(parts, ","+pad)
}

// schemasCompatible reports whether a node's actual schema satisfies
// what the parent declared. Note the asymmetry with decoding: here a
// primitive must match by exact name, so a "number" expectation does
// not absorb an inferred "float", and the float gets tagged.
func (e *encState) schemasCompatible(nodeSchema, expected *ir.Schema) bool {
	if expected == nil || expected.IsAny() {
		return true
	}
	if nodeSchema == nil {
		return true
	}
	if nodeSchema.Kind != expected.Kind {
		return false
	}
	if nodeSchema.IsPrimitive() && expected.IsPrimitive() {
		return nodeSchema.TypeName == expected.TypeName
	}
	return true
}

// typeLabel builds the short label used in override tags.
func (e *encState) typeLabel(s *ir.Schema) string {
	if s == nil {
		return "any"
	}
	switch {
	case s.IsPrimitive():
		return s.TypeName
	case s.IsList():
		return "[" + e.typeLabel(s.Element) + "]"
	case s.IsRecord() && s.TypeName != "" && s.TypeName != "any":
		return s.TypeName
	default:
		return "any"
	}
}

// applyTypeTag prepends "<type> " when the value's schema drifted from
// the declared one, so a re-decode rebuilds the same tree.
func (e *encState) applyTypeTag(val string, nodeSchema, expected *ir.Schema) string {
	if e.schemasCompatible(nodeSchema, expected) {
		return val
	}
	tag := e.cSchema("<" + e.typeLabel(nodeSchema) + ">")
	return tag + " " + val
}
