package decode

import (
	"fmt"
	"strconv"

	"github.com/arkadia-format/go-adf/ir"
	"github.com/arkadia-format/go-adf/token"
)

// parseNode is the dispatch hub: it scans leading metadata, then picks
// a parser off the first significant character. Unknown characters are
// consumed one at a time with a recorded error, so a stream of garbage
// still terminates.
func (d *decoder) parseNode() *ir.Node {
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > MaxDepth {
		d.addError("Nesting too deep")
		d.c.Advance(1)
		return d.createNode(ir.Null())
	}

	d.scanMeta(nodeArg(d.node()))

	if d.c.EOF() {
		d.addError("Unexpected EOF while expecting a node")
		return d.createNode(ir.Null())
	}

	var node *ir.Node
	switch ch := d.c.Peek(); {
	case ch == '@':
		node = d.parseNodeWithSchemaRef()
	case ch == '<':
		node = d.parseNodeWithInlineSchema()
	case ch == '[':
		node = d.parseList()
	case ch == '(':
		node = d.parsePositionalRecord()
	case ch == '{':
		node = d.parseNamedRecord()
	case ch == '"':
		node = d.parseString()
	case token.IsDigit(ch) || ch == '-':
		node = d.parseNumber()
	case token.IsIdentStart(ch):
		node = d.parseRawString()
	default:
		d.addError(fmt.Sprintf("Unexpected character %q", string(ch)))
		d.c.Advance(1)
		node = d.createNode(ir.Null())
	}

	d.applyPending(node)
	return node
}

// parseNodeWithSchemaRef handles "@Type value". The referenced schema
// becomes the expected context for the value and is force-linked onto
// the resulting node.
func (d *decoder) parseNodeWithSchemaRef() *ir.Node {
	s := d.parseSchemaAtRef()
	d.pushSchema(s)
	node := d.parseNode()
	d.popSchema()
	node.Schema = s
	return node
}

// parseNodeWithInlineSchema handles "<...> value", including the
// override-tag form "<string> 3" the encoder emits for mismatches.
func (d *decoder) parseNodeWithInlineSchema() *ir.Node {
	s := d.parseSchemaBody("")
	d.pushSchema(s)
	node := d.parseNode()
	d.popSchema()
	node.Schema = s
	return node
}

// parseList parses [ a, b, ... ]. When the expected element schema is
// still "any", the first concrete element fixes it; later elements
// that disagree simply keep their own schema and get tagged at encode
// time.
func (d *decoder) parseList() *ir.Node {
	d.trace("Start LIST [")
	d.c.Advance(1)

	node := d.createNode(ir.Null())
	node.Elements = []*ir.Node{}

	if node.Schema.Kind != ir.List {
		node.Schema.Kind = ir.List
		node.Schema.TypeName = "list"
		node.Schema.Element = ir.AnySchema()
	}

	parent := node.Schema
	child := ir.AnySchema()
	if parent.IsList() && parent.Element != nil {
		child = parent.Element
	}

	var childNode *ir.Node
	for {
		d.scanMeta(nodeArg(node))

		if d.c.EOF() {
			d.addError("Unexpected EOF: List not closed, expected ']'")
			break
		}
		if d.c.Peek() == ']' {
			d.applyPendingTo(nodeArg(childNode), nodeArg(node))
			d.c.Advance(1)
			break
		}
		if d.c.Peek() == ',' {
			d.applyPendingTo(nodeArg(childNode), nodeArg(node))
			d.c.Advance(1)
			continue
		}

		d.pushSchema(child)
		childNode = d.parseNode()
		node.Elements = append(node.Elements, childNode)

		// First concrete element fixes the element type. Later elements
		// still parse against the original child context, so disagreeing
		// ones carry their own inferred schema instead of coercing.
		if parent.Element != nil && parent.Element.IsAny() {
			parent.Element = childNode.Schema
		}

		d.applyPendingTo(nodeArg(childNode), nodeArg(node))
		d.popNode()
		d.popSchema()
	}

	d.trace("End LIST ]")
	return node
}

// parsePositionalRecord parses ( v1, v2, ... ), binding values to the
// expected schema's fields by index. Values past the declared fields
// (or all of them, with no schema) synthesize _0, _1, ... fields from
// the parsed value's schema.
func (d *decoder) parsePositionalRecord() *ir.Node {
	d.trace("Start RECORD (")
	d.c.Advance(1)

	node := d.createNode(ir.Null())
	if node.Schema.Kind != ir.Record {
		node.Schema.Kind = ir.Record
		node.Schema.TypeName = "any"
	}

	// Freeze the declared fields; inferred overflow fields must not
	// shift the binding of later positions.
	predefined := make([]*ir.Schema, node.Schema.NumFields())
	copy(predefined, node.Schema.Fields())

	index := 0
	var valNode *ir.Node
	for !d.c.EOF() {
		d.scanMeta(nodeArg(node))

		if d.c.Peek() == ')' {
			d.applyPendingTo(nodeArg(valNode), nodeArg(node))
			d.c.Advance(1)
			break
		}
		if d.c.Peek() == ',' {
			d.applyPendingTo(nodeArg(valNode), nodeArg(node))
			d.c.Advance(1)
			continue
		}

		fieldSchema := ir.AnySchema()
		if index < len(predefined) {
			fieldSchema = predefined[index]
		}

		d.pushSchema(fieldSchema)
		valNode = d.parseNode()

		if index < len(predefined) {
			node.SetField(predefined[index].Name, valNode)
		} else {
			name := "_" + strconv.Itoa(index)
			inferred := ir.NewSchema(valNode.Schema.Kind, valNode.Schema.TypeName)
			inferred.Name = name
			node.Schema.AddField(inferred)
			node.SetField(name, valNode)
		}

		d.applyPendingTo(nodeArg(valNode), nodeArg(node))
		d.popNode()
		d.popSchema()
		index++
	}

	d.trace("End RECORD )")
	return node
}

// parseNamedRecord parses { key: value, ... }. Two forms of schema
// growth happen here: a declared "any" field specializes in place to
// the first concrete value it receives, and keys the schema never
// declared are appended as inferred fields.
func (d *decoder) parseNamedRecord() *ir.Node {
	d.trace("Start NAMED RECORD {")
	d.c.Advance(1)

	node := d.createNode(ir.Null())
	if node.Schema.Kind != ir.Record {
		node.Schema.Kind = ir.Record
		node.Schema.TypeName = "any"
	}
	cur := node.Schema

	var valNode *ir.Node
	for !d.c.EOF() {
		d.scanMeta(nodeArg(node))

		if d.c.Peek() == '}' {
			d.applyPendingTo(nodeArg(valNode), nodeArg(node))
			d.c.Advance(1)
			break
		}
		if d.c.Peek() == ',' {
			d.applyPendingTo(nodeArg(valNode), nodeArg(node))
			d.c.Advance(1)
			continue
		}

		key := d.c.ReadIdent()
		if key == "" {
			if d.c.Peek() == '"' {
				s, ok := d.c.ReadQuoted()
				if !ok {
					d.addError(`Expected '"', got "EOF"`)
				}
				key = s
			} else {
				d.addError("Expected key in record")
				d.c.Advance(1)
				continue
			}
		}

		d.c.SkipWhitespace()
		d.expect(':')

		fieldSchema := ir.AnySchema()
		if cur.IsRecord() {
			if f, ok := cur.Field(key); ok {
				fieldSchema = f
			}
		}

		d.pushSchema(fieldSchema)
		valNode = d.parseNode()

		// Self-specialization: a declared "any" field adopts the shape
		// of its first concrete value, in place, keeping its position.
		if !valNode.Schema.IsAny() {
			if f, ok := cur.Field(key); ok && f.IsAny() {
				valNode.Schema.Name = key
				cur.ReplaceField(valNode.Schema)
			}
		}

		// Inference: record the field on the schema if it never
		// declared this key.
		if _, ok := node.Schema.Field(key); !ok {
			inferred := ir.NewSchema(valNode.Schema.Kind, valNode.Schema.TypeName)
			inferred.Name = key
			node.Schema.AddField(inferred)
		}

		node.SetField(key, valNode)
		d.applyPendingTo(nodeArg(valNode), nodeArg(node))
		d.popNode()
		d.popSchema()
	}

	d.trace("End NAMED RECORD }")
	return node
}

// =========================================================
// Primitive nodes
// =========================================================

func (d *decoder) parseString() *ir.Node {
	s, ok := d.c.ReadQuoted()
	if !ok {
		d.addError(`Expected '"', got "EOF"`)
	}
	return d.createNode(ir.String(s))
}

func (d *decoder) parseNumber() *ir.Node {
	return d.createNode(d.readNumberValue())
}

// parseRawString handles unquoted idents: the true/false/null keywords
// and bare enum-like strings.
func (d *decoder) parseRawString() *ir.Node {
	switch raw := d.c.ReadIdent(); raw {
	case "true":
		return d.createNode(ir.Bool(true))
	case "false":
		return d.createNode(ir.Bool(false))
	case "null":
		return d.createNode(ir.Null())
	default:
		return d.createNode(ir.String(raw))
	}
}
