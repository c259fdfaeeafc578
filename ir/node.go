package ir

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Node is a decoded value bound to a Schema. Exactly one of the three
// payloads is meaningful, selected by the schema's kind: Value for
// primitives, Fields for records, Elements for lists.
//
// Node metadata is independent of the schema's metadata; the decoder
// attaches each from its own source position.
type Node struct {
	Meta

	Schema *Schema
	Name   string

	Value    Value
	Fields   map[string]*Node
	Elements []*Node
}

// NewNode returns a node bound to the given schema.
func NewNode(schema *Schema) *Node {
	return &Node{Schema: schema}
}

func (n *Node) IsPrimitive() bool { return n.Schema != nil && n.Schema.IsPrimitive() }
func (n *Node) IsRecord() bool    { return n.Schema != nil && n.Schema.IsRecord() }
func (n *Node) IsList() bool      { return n.Schema != nil && n.Schema.IsList() }

// SetField stores a child under a field name.
func (n *Node) SetField(name string, child *Node) {
	if n.Fields == nil {
		n.Fields = map[string]*Node{}
	}
	n.Fields[name] = child
}

// Field returns the child stored under a field name, or nil.
func (n *Node) Field(name string) *Node { return n.Fields[name] }

// ApplyMeta merges a scanned metadata block into the node. The
// !required constraint is schema-only and ignored here.
func (n *Node) ApplyMeta(info *MetaInfo) {
	n.applyCommonMeta(info)
}

// ClearMeta resets the metadata bag.
func (n *Node) ClearMeta() { n.clearCommonMeta() }

// Interface recursively converts the node into plain Go values:
// scalars, []any and map[string]any, the shape downstream JSON/YAML
// serializers expect.
func (n *Node) Interface() any {
	switch {
	case n.IsPrimitive():
		return n.Value.Interface()
	case n.IsList():
		res := make([]any, len(n.Elements))
		for i, el := range n.Elements {
			res[i] = el.Interface()
		}
		return res
	case n.IsRecord():
		res := make(map[string]any, len(n.Fields))
		for name, f := range n.Fields {
			res[name] = f.Interface()
		}
		return res
	default:
		return n.Value.Interface()
	}
}

// JSON renders the node as indented JSON.
func (n *Node) JSON(indent int) (string, error) {
	d, err := json.MarshalIndent(n.Interface(), "", strings.Repeat(" ", indent))
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// Visit walks the node tree pre- and post-order; f's first return
// controls descent.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, el := range n.Elements {
			if err := el.Visit(f); err != nil {
				return err
			}
		}
		for _, fs := range n.schemaOrderedFields() {
			if err := fs.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

// schemaOrderedFields returns the field nodes in schema declaration
// order, skipping fields the node never bound.
func (n *Node) schemaOrderedFields() []*Node {
	if n.Schema == nil {
		return nil
	}
	res := make([]*Node, 0, len(n.Fields))
	for _, f := range n.Schema.Fields() {
		if child := n.Fields[f.Name]; child != nil {
			res = append(res, child)
		}
	}
	return res
}

func (n *Node) String() string {
	var b strings.Builder
	label := "UNKNOWN"
	if n.Schema != nil {
		switch {
		case n.IsList():
			el := "any"
			if n.Schema.Element != nil {
				el = n.Schema.Element.TypeName
			}
			label = "LIST[" + el + "]"
		case n.IsRecord() && n.Schema.TypeName != "record" && n.Schema.TypeName != "any":
			label = "RECORD:" + n.Schema.TypeName
		default:
			label = strings.ToUpper(n.Schema.Kind.String()) + ":" + n.Schema.TypeName
		}
	}
	fmt.Fprintf(&b, "<Node(%s)", label)
	switch {
	case n.IsPrimitive():
		v := n.Value.Text()
		if len(v) > 50 {
			v = v[:47] + "..."
		}
		fmt.Fprintf(&b, " val=%s", v)
	case n.IsList():
		fmt.Fprintf(&b, " len=%d", len(n.Elements))
	case n.IsRecord():
		names := []string{}
		if n.Schema != nil {
			for i, f := range n.Schema.Fields() {
				if i == 3 {
					names = append(names, "...")
					break
				}
				names = append(names, f.Name)
			}
		}
		fmt.Fprintf(&b, " fields=[%s]", strings.Join(names, ", "))
	}
	if len(n.Comments) > 0 {
		fmt.Fprintf(&b, " comments=%d", len(n.Comments))
	}
	if len(n.Attr) > 0 {
		fmt.Fprintf(&b, " attr=%v", n.AttrKeys())
	}
	if len(n.Tags) > 0 {
		fmt.Fprintf(&b, " tags=%v", n.Tags)
	}
	b.WriteString(">")
	return b.String()
}
