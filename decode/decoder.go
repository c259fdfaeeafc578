package decode

import (
	"fmt"
	"strconv"

	"github.com/arkadia-format/go-adf/ir"
	"github.com/arkadia-format/go-adf/token"
)

// primitiveNames maps declared primitive type names to their canonical
// form. int and float collapse to number when a schema body is parsed;
// the float name only survives transiently on inferred schemas.
var primitiveNames = map[string]string{
	"string": "string",
	"bool":   "bool",
	"number": "number",
	"null":   "null",
	"int":    "number",
	"float":  "number",
	"binary": "binary",
}

type decoder struct {
	c *token.Cursor

	// pending collects comments and modifiers until the next node or
	// schema claims them.
	pending *ir.MetaInfo

	nodeStack   []*ir.Node
	schemaStack []*ir.Schema
	named       map[string]*ir.Schema

	errors   []*Error
	warnings []*Warning

	depth int
}

// metaHolder is the shared surface of *ir.Node and *ir.Schema that
// metadata application needs.
type metaHolder interface {
	ApplyMeta(*ir.MetaInfo)
}

func schemaArg(s *ir.Schema) metaHolder {
	if s == nil {
		return nil
	}
	return s
}

func nodeArg(n *ir.Node) metaHolder {
	if n == nil {
		return nil
	}
	return n
}

// Decode parses ADF text into a node tree. It never fails outright:
// the Result always carries a usable Node and Schema, alongside any
// errors and warnings recovery produced.
func Decode(text string, opts ...Option) *Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.stripANSI {
		text = token.StripANSI(text)
	}
	d := &decoder{
		c:       token.NewCursor(o.schema + text),
		pending: &ir.MetaInfo{},
		named:   map[string]*ir.Schema{},
	}
	return d.decode()
}

func (d *decoder) decode() *Result {
	d.trace("decode() start")
	d.scanMeta(nil)

	// Definitions before the data: any run of <...> bodies and @Name
	// headers. The last one seen becomes the root context.
	var rootCtx *ir.Schema
	for !d.c.EOF() {
		switch d.c.Peek() {
		case '<':
			rootCtx = d.parseSchemaBody("")
			d.scanMeta(nil)
			if ch := d.c.Peek(); ch == '(' || ch == '{' || ch == '[' {
				goto data
			}
			continue
		case '@':
			schema := d.parseSchemaAtRef()
			d.scanMeta(nil)
			// Another definition follows; keep scanning.
			if ch := d.c.Peek(); ch == '@' || ch == '<' {
				continue
			}
			// This @Name was the root node header.
			rootCtx = schema
			goto data
		}
		break
	}

data:
	if rootCtx != nil {
		d.pushSchema(rootCtx)
	}

	var root *ir.Node
	if d.c.EOF() {
		root = d.createNode(ir.Null())
	} else {
		root = d.parseNode()
	}

	if rootCtx != nil {
		d.popSchema()
		// Re-link when the value stayed generic; a mismatching value
		// keeps its inferred schema instead.
		if root.Schema == nil || root.Schema.IsAny() {
			root.Schema = rootCtx
		}
	} else {
		rootCtx = root.Schema
	}

	// Trailing comments and modifiers attach to the root.
	d.scanMeta(nil)
	d.applyPending(root)

	d.popNode()
	d.trace("decode() end")

	return &Result{
		Node:     root,
		Schema:   rootCtx,
		Errors:   d.errors,
		Warnings: d.warnings,
	}
}

// =========================================================
// Context stacks
// =========================================================

func (d *decoder) schema() *ir.Schema {
	if len(d.schemaStack) == 0 {
		return nil
	}
	return d.schemaStack[len(d.schemaStack)-1]
}

func (d *decoder) node() *ir.Node {
	if len(d.nodeStack) == 0 {
		return nil
	}
	return d.nodeStack[len(d.nodeStack)-1]
}

func (d *decoder) pushSchema(s *ir.Schema) {
	d.schemaStack = append(d.schemaStack, s)
	d.traceStacks("PUSH SCHEMA %s", s)
}

// popSchema removes the current schema context. Popping a list schema
// transfers the metadata collected on its element up to the list
// itself; element metadata belongs to the list declaration, not to any
// single element.
func (d *decoder) popSchema() *ir.Schema {
	if len(d.schemaStack) == 0 {
		return nil
	}
	s := d.schemaStack[len(d.schemaStack)-1]
	d.schemaStack = d.schemaStack[:len(d.schemaStack)-1]
	d.traceStacks("POP SCHEMA %s", s)
	if s.IsList() && s.Element != nil {
		s.ApplyMetaOf(s.Element)
		s.Element.ClearMeta()
	}
	return s
}

func (d *decoder) pushNode(n *ir.Node) {
	d.nodeStack = append(d.nodeStack, n)
	d.traceStacks("PUSH NODE %s", n)
}

func (d *decoder) popNode() *ir.Node {
	if len(d.nodeStack) == 0 {
		return nil
	}
	n := d.nodeStack[len(d.nodeStack)-1]
	d.nodeStack = d.nodeStack[:len(d.nodeStack)-1]
	d.traceStacks("POP NODE %s", n)
	return n
}

// =========================================================
// Node and schema construction
// =========================================================

// createNode builds a node against the current schema context,
// consumes the pending metadata and pushes the node.
//
// A concrete value negotiates with the expected schema: an "any"
// expectation adopts the inferred primitive, an exact or number/float
// match keeps the expectation, and anything else silently replaces the
// schema with the inferred one. The encoder surfaces the replacement
// later as an override tag. A null value keeps a structural
// expectation (the caller is about to fill it) and otherwise becomes a
// fresh null primitive.
func (d *decoder) createNode(v ir.Value) *ir.Node {
	cur := d.schema()
	if cur == nil {
		cur = ir.AnySchema()
		d.pushSchema(cur)
	}

	final := cur
	if !v.IsNull() {
		inferred := ir.PrimitiveSchema(v.TypeName())
		switch {
		case cur.Kind == ir.Any:
			final = inferred
		case cur.TypeName == inferred.TypeName:
			// keep expectation
		case cur.TypeName == "number" && (inferred.TypeName == "int" || inferred.TypeName == "float"):
			// number accepts narrower numerics
		default:
			final = inferred
		}
	} else {
		switch {
		case cur.IsRecord() || cur.IsList():
			final = cur
		default:
			final = ir.PrimitiveSchema("null")
		}
	}

	node := ir.NewNode(final)
	node.Value = v
	d.applyPending(node)
	d.pushNode(node)
	return node
}

// createSchema builds a schema, consumes the pending metadata into it
// and pushes it as the current context.
func (d *decoder) createSchema(kind ir.Kind, typeName string) *ir.Schema {
	s := ir.NewSchema(kind, typeName)
	d.applyPending(s)
	d.pushSchema(s)
	return s
}

// applyPending flushes the accumulated metadata onto obj and resets
// the buffer.
func (d *decoder) applyPending(obj metaHolder) {
	if obj != nil {
		obj.ApplyMeta(d.pending)
	}
	d.pending = &ir.MetaInfo{}
}

// applyPendingTo prefers the most recently parsed child over the
// container, so metadata scanned after a value sticks to that value.
func (d *decoder) applyPendingTo(child, container metaHolder) {
	if child != nil {
		d.applyPending(child)
		return
	}
	d.applyPending(container)
}

// =========================================================
// Errors
// =========================================================

func (d *decoder) addError(msg string) {
	if len(d.errors) >= MaxErrors {
		return
	}
	d.trace("ERROR: %s", msg)
	d.errors = append(d.errors, &Error{
		Message: msg,
		Pos:     d.c.Pos(),
		Schema:  d.schema(),
		Node:    d.node(),
	})
}

func (d *decoder) addWarning(msg string) {
	d.trace("WARNING: %s", msg)
	d.warnings = append(d.warnings, &Warning{
		Message: msg,
		Pos:     d.c.Pos(),
	})
}

// expect consumes ch or records an error and stays put.
func (d *decoder) expect(ch byte) bool {
	if d.c.Peek() != ch {
		got := "EOF"
		if !d.c.EOF() {
			got = string(d.c.Peek())
		}
		d.addError(fmt.Sprintf("Expected %q, got %q", string(ch), got))
		return false
	}
	d.c.Advance(1)
	return true
}

// =========================================================
// Primitive values
// =========================================================

// parsePrimitiveValue reads a bare scalar without creating a node.
// Used for $key=value attribute payloads.
func (d *decoder) parsePrimitiveValue() ir.Value {
	if d.c.EOF() {
		return ir.Null()
	}
	ch := d.c.Peek()
	if ch == '"' {
		s, ok := d.c.ReadQuoted()
		if !ok {
			d.addError(`Expected '"', got "EOF"`)
		}
		return ir.String(s)
	}
	if token.IsDigit(ch) || ch == '-' {
		return d.readNumberValue()
	}
	switch raw := d.c.ReadIdent(); raw {
	case "true":
		return ir.Bool(true)
	case "false":
		return ir.Bool(false)
	case "null":
		return ir.Null()
	default:
		return ir.String(raw)
	}
}

func (d *decoder) readNumberValue() ir.Value {
	raw, isFloat := d.c.ReadNumber()
	if !isFloat {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return ir.Int(i)
		}
	}
	// Floats, and integers too large for int64.
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return ir.Float(f)
	}
	d.addError("Invalid number format: " + raw)
	return ir.Int(0)
}
