package decode

import "github.com/arkadia-format/go-adf/ir"

// parseSchemaAtRef parses @Name or @Name<...>. A definition registers
// the schema under its name for later references; a reference returns
// the registered object itself, so every use shares (and mutates) one
// schema. An unknown name yields an unregistered empty record
// placeholder.
func (d *decoder) parseSchemaAtRef() *ir.Schema {
	d.c.Advance(1) // '@'
	name := d.c.ReadIdent()
	d.c.SkipWhitespace()

	if d.c.Peek() == '<' {
		d.trace("defining type %s", name)
		s := d.parseSchemaBody(name)
		if s.IsAny() {
			s.Kind = ir.Record
		}
		d.named[name] = s
		return s
	}

	d.trace("referencing type %s", name)
	if s, ok := d.named[name]; ok {
		return s
	}
	return ir.NewSchema(ir.Record, name)
}

// parseSchemaBody parses a < ... > block into a schema. It starts as a
// record; the body content may flip it to a list or a bare primitive.
func (d *decoder) parseSchemaBody(typeName string) *ir.Schema {
	d.trace("START schema body @%s", typeName)

	if !d.expect('<') {
		s := d.createSchema(ir.Any, typeName)
		d.popSchema()
		return s
	}

	s := d.createSchema(ir.Record, typeName)
	d.parseSchemaBodyContent(s, '>')
	d.popSchema()

	d.trace("END schema body @%s", typeName)
	return s
}

// parseSchemaBodyContent fills a schema from the inside of < ... > or
// [ ... ]. It handles the three body shapes: a [ ... ] element block
// flips the schema to a list, a bare primitive name makes it a
// primitive, and name:type pairs accumulate record fields.
func (d *decoder) parseSchemaBodyContent(schema *ir.Schema, end byte) {
	var fieldSchema *ir.Schema

	for !d.c.EOF() {
		d.scanMeta(schemaArg(schema))

		ch := d.c.Peek()
		if ch == end {
			d.c.Advance(1)
			break
		}

		if ch == '[' {
			d.c.Advance(1)
			d.trace("LIST schema begin")
			schema.Kind = ir.List
			schema.ClearFields()
			d.applyPending(schema)

			element := ir.AnySchema()
			d.parseSchemaBodyContent(element, ']')
			schema.Element = element

			d.scanMeta(schemaArg(schema))
			if d.c.Peek() == end {
				d.c.Advance(1)
			}
			d.applyPending(schema)
			return
		}

		if ch == ',' {
			d.applyPendingTo(schemaArg(fieldSchema), schemaArg(schema))
			d.c.Advance(1)
			continue
		}

		name := d.c.ReadIdent()
		if name == "" {
			d.addError("Expected identifier")
			d.c.Advance(1)
			continue
		}
		d.c.SkipWhitespace()

		// Bare primitive body: <int>, <[string]>.
		if mapped, ok := primitiveNames[name]; ok && d.c.Peek() != ':' {
			schema.Kind = ir.Primitive
			schema.TypeName = mapped
			continue
		}

		if d.c.Peek() == ':' {
			d.c.Advance(1)
			fieldSchema = d.parseSchemaType()
		} else {
			fieldSchema = ir.PrimitiveSchema("any")
		}
		fieldSchema.Name = name

		// Metadata scanned before the name belongs to this field, and
		// so does anything trailing the type up to the comma.
		d.applyPending(fieldSchema)
		d.scanMeta(schemaArg(schema))
		d.applyPendingTo(schemaArg(fieldSchema), schemaArg(schema))

		schema.AddField(fieldSchema)
	}

	d.applyPendingTo(schemaArg(fieldSchema), schemaArg(schema))
}

// parseSchemaType parses a type signature after "name:", one of:
// [elem], @Name, @Name<...>, <...>, a primitive name, or a bare named
// reference. Unknown bare names become forward-reference placeholders.
func (d *decoder) parseSchemaType() *ir.Schema {
	d.scanMeta(schemaArg(d.schema()))

	switch d.c.Peek() {
	case '[':
		d.c.Advance(1)
		lst := ir.NewSchema(ir.List, "")
		d.applyPending(lst)
		lst.Element = d.parseSchemaType()
		d.expect(']')
		return lst

	case '@':
		d.c.Advance(1)
		name := d.c.ReadIdent()
		d.scanMeta(schemaArg(d.schema()))
		if d.c.Peek() == '<' {
			d.trace("inline definition for @%s", name)
			s := d.parseSchemaBody(name)
			if s.IsAny() {
				s.Kind = ir.Record
			}
			d.named[name] = s
			return s
		}
		if s, ok := d.named[name]; ok {
			return s
		}
		return ir.NewSchema(ir.Record, name)

	case '<':
		return d.parseSchemaBody("")

	default:
		name := d.c.ReadIdent()
		if mapped, ok := primitiveNames[name]; ok {
			s := ir.PrimitiveSchema(mapped)
			d.applyPending(s)
			return s
		}
		if s, ok := d.named[name]; ok {
			return s
		}
		if name == "" {
			return ir.AnySchema()
		}
		return ir.NewSchema(ir.Record, name)
	}
}
