package encode

import (
	"io"
	"strings"

	"github.com/arkadia-format/go-adf/ir"
	"github.com/arkadia-format/go-adf/token"
)

// maxDepth caps structural recursion. Self-referential named schemas
// are legal input; past the cap the output degrades instead of looping.
const maxDepth = 256

type encState struct {
	cfg    config
	colors *Colors
	depth  int
}

// Encode writes the node as ADF text to w.
func Encode(node *ir.Node, w io.Writer, opts ...Option) error {
	_, err := io.WriteString(w, String(node, opts...))
	return err
}

// String renders the node as ADF text.
func String(node *ir.Node, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &encState{cfg: cfg}
	if cfg.colorize {
		e.colors = NewColors()
	}
	if cfg.promptOutput {
		return e.prompt(node, cfg.startIndent)
	}
	return e.encode(node, 0, true)
}

// SchemaString renders just the schema header for a schema.
func SchemaString(s *ir.Schema, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &encState{cfg: cfg}
	if cfg.colorize {
		e.colors = NewColors()
	}
	return strings.TrimSpace(e.encodeSchema(s, 0, true))
}

// encode renders one node: schema header first, then data.
func (e *encState) encode(n *ir.Node, indent int, includeSchema bool) string {
	e.depth++
	defer func() { e.depth-- }()
	if e.depth > maxDepth {
		return e.cNull("null")
	}

	base := e.cfg.startIndent + indent

	prefix := ""
	if includeSchema && n.Schema != nil && e.cfg.includeSchema {
		st := strings.TrimSpace(e.encodeSchema(n.Schema, base, true))
		// Primitive and list headers come back bare; wrap them. The
		// check runs on the plain text so colors don't confuse it.
		if plain := token.StripANSI(st); plain != "" &&
			!strings.HasPrefix(plain, "<") && !strings.HasPrefix(plain, "@") {
			st = "<" + st + ">"
		}
		if st != "" {
			if e.cfg.compact {
				prefix = st
			} else {
				prefix = st + "\n" + strings.Repeat(" ", base)
			}
		}
	}

	var data string
	switch {
	case n.IsList():
		data = e.list(n, base)
	case n.IsPrimitive():
		data = e.primitiveNode(n)
	case n.IsRecord():
		data = e.record(n, base)
	default:
		data = e.cNull("null")
	}

	return prefix + data
}

func (e *encState) pad() string {
	if e.cfg.compact {
		return ""
	}
	return " "
}

// =========================================================
// Primitives
// =========================================================

func (e *encState) primitiveNode(n *ir.Node) string {
	meta := e.metaInline(&n.Meta, false)
	if meta != "" {
		meta += " "
	}
	return meta + e.primitive(n.Value)
}

func (e *encState) primitive(v ir.Value) string {
	switch v.Kind {
	case ir.StringValue:
		return e.quoted(v.Str)
	case ir.BoolValue:
		return e.cBool(v.Text())
	case ir.NullValue:
		return e.cNull("null")
	default:
		return e.cNumber(v.Text())
	}
}

func (e *encState) quoted(s string) string {
	if e.cfg.escapeNewlines {
		s = escapeNewlines(s)
	}
	s = strings.ReplaceAll(s, `"`, `\"`)
	return e.cString(`"` + s + `"`)
}

func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\n")
	return strings.ReplaceAll(s, "\n", "\\n")
}

// =========================================================
// Metadata rendering
// =========================================================

// buildMeta renders the shared metadata content: comments, the
// required flag, then attributes (sorted by key) and tags.
func (e *encState) buildMeta(m *ir.Meta, required bool) string {
	pad := e.pad()
	var items []string

	if e.cfg.includeComments {
		for _, c := range m.Comments {
			items = append(items, e.cNull("/*"+pad+strings.TrimSpace(c)+pad+"*/"))
		}
	}
	if required {
		items = append(items, e.cTag("!required"))
	}
	if e.cfg.includeMeta {
		for _, k := range m.AttrKeys() {
			items = append(items, e.cAttr("$"+k+"=")+e.primitive(m.Attr[k]))
		}
		for _, t := range m.Tags {
			items = append(items, e.cTag("#"+t))
		}
	}
	return strings.Join(items, " ")
}

// metaInline renders metadata bare, for primitives and schema fields.
func (e *encState) metaInline(m *ir.Meta, required bool) string {
	return e.buildMeta(m, required)
}

// metaWrapped renders metadata inside a / ... / block, for containers
// and schema headers.
func (e *encState) metaWrapped(m *ir.Meta, required bool) string {
	content := e.buildMeta(m, required)
	if content == "" {
		return ""
	}
	pad := e.pad()
	content = e.cSchema("/"+pad) + content + e.cSchema(pad+"/")
	if e.cfg.compact {
		return content + " "
	}
	return " " + content + " "
}
