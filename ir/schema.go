package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the shape a Schema describes.
type Kind int

const (
	Any Kind = iota
	Primitive
	Record
	List
	// Dict is reserved for key-value schemas; nothing produces it yet.
	Dict
)

func (k Kind) String() string {
	switch k {
	case Any:
		return "any"
	case Primitive:
		return "primitive"
	case Record:
		return "record"
	case List:
		return "list"
	case Dict:
		return "dict"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Schema describes the shape a value must or may take. Schemas are
// freely aliased: record fields, list elements and nodes may all hold
// the same *Schema, and in-place edits (AddField, ReplaceField) are
// visible to every holder.
type Schema struct {
	Meta

	Kind Kind
	// TypeName is the primitive name for Primitive kind, the declared
	// @Name for named records, or "any".
	TypeName string
	// Name is the field name when this schema is owned by a record.
	Name string
	// Element is the single element schema of a List.
	Element *Schema
	// Required is set by the !required modifier. Schema-only.
	Required bool

	fields     []*Schema
	fieldIndex map[string]int
}

// NewSchema returns a schema of the given kind; an empty typeName
// defaults to "any".
func NewSchema(kind Kind, typeName string) *Schema {
	if typeName == "" {
		typeName = "any"
	}
	return &Schema{Kind: kind, TypeName: typeName}
}

func AnySchema() *Schema { return NewSchema(Any, "") }

func PrimitiveSchema(typeName string) *Schema {
	return NewSchema(Primitive, typeName)
}

func ListSchema(element *Schema) *Schema {
	s := NewSchema(List, "list")
	s.Element = element
	return s
}

// NamedField sets the field name on a schema and returns it, for
// building record schemas inline.
func NamedField(name string, s *Schema) *Schema {
	s.Name = name
	return s
}

func (s *Schema) IsPrimitive() bool { return s.Kind == Primitive }
func (s *Schema) IsRecord() bool    { return s.Kind == Record }
func (s *Schema) IsList() bool      { return s.Kind == List }

// IsAny reports whether the schema is unconstrained: kind Any, or a
// Primitive or Record whose type name is still "any". This three-way
// check is load-bearing in both the decoder and the encoder.
func (s *Schema) IsAny() bool {
	if s.Kind == Any {
		return true
	}
	if s.TypeName != "any" {
		return false
	}
	return s.Kind == Primitive || s.Kind == Record
}

// Fields returns the ordered field list. Callers must not reorder it.
func (s *Schema) Fields() []*Schema { return s.fields }

func (s *Schema) NumFields() int { return len(s.fields) }

// Field looks a field up by name.
func (s *Schema) Field(name string) (*Schema, bool) {
	i, ok := s.fieldIndex[name]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

// FieldAt returns the field at a position, or nil when out of range.
func (s *Schema) FieldAt(i int) *Schema {
	if i < 0 || i >= len(s.fields) {
		return nil
	}
	return s.fields[i]
}

// AddField appends a field, forcing the schema to Record kind. An
// unnamed field gets the auto name _<index>.
func (s *Schema) AddField(f *Schema) {
	if s.Kind != Record {
		s.Kind = Record
	}
	if f.Name == "" {
		f.Name = "_" + strconv.Itoa(len(s.fields))
	}
	if s.fieldIndex == nil {
		s.fieldIndex = map[string]int{}
	}
	s.fieldIndex[f.Name] = len(s.fields)
	s.fields = append(s.fields, f)
}

// ReplaceField substitutes the field with the same name in place,
// preserving its position in the declaration order. An unknown name
// appends like AddField. Used to upgrade an inferred "any" field to a
// concrete type.
func (s *Schema) ReplaceField(f *Schema) {
	if f.Name == "" {
		return
	}
	if i, ok := s.fieldIndex[f.Name]; ok {
		s.fields[i] = f
		return
	}
	s.AddField(f)
}

// ClearFields drops every field.
func (s *Schema) ClearFields() {
	s.fields = nil
	s.fieldIndex = nil
}

// ApplyMeta merges a scanned metadata block into the schema. Unlike
// MetaInfo.Merge, the required flag only latches on here.
func (s *Schema) ApplyMeta(info *MetaInfo) {
	s.applyCommonMeta(info)
	if info.Required {
		s.Required = true
	}
}

// ApplyMetaOf lifts another schema's metadata bag onto this one. The
// decoder uses it to transfer element metadata up to the list schema
// when a list body closes.
func (s *Schema) ApplyMetaOf(o *Schema) {
	s.ApplyMeta(&MetaInfo{
		Comments: o.Comments,
		Attr:     o.Attr,
		Tags:     o.Tags,
		Required: o.Required,
	})
}

// ClearMeta resets the metadata bag and the required flag.
func (s *Schema) ClearMeta() {
	s.clearCommonMeta()
	s.Required = false
}

func (s *Schema) String() string {
	var b strings.Builder
	b.WriteString("<Schema(")
	b.WriteString(strings.ToUpper(s.Kind.String()))
	if s.TypeName != "" && s.TypeName != "any" && s.TypeName != s.Kind.String() {
		b.WriteString(":" + s.TypeName)
	}
	b.WriteString(")")
	if s.Name != "" {
		fmt.Fprintf(&b, " name=%q", s.Name)
	}
	if s.Required {
		b.WriteString(" !required")
	}
	if len(s.Attr) > 0 {
		fmt.Fprintf(&b, " attr=%v", s.AttrKeys())
	}
	if len(s.Tags) > 0 {
		fmt.Fprintf(&b, " tags=%v", s.Tags)
	}
	if len(s.Comments) > 0 {
		fmt.Fprintf(&b, " comments=%d", len(s.Comments))
	}
	switch {
	case s.IsRecord():
		names := make([]string, 0, 3)
		for i, f := range s.fields {
			if i == 3 {
				names = append(names, "...")
				break
			}
			names = append(names, f.Name)
		}
		fmt.Fprintf(&b, " fields(%d)=[%s]", len(s.fields), strings.Join(names, ", "))
	case s.IsList():
		if s.Element != nil {
			fmt.Fprintf(&b, " element=%s:%s", strings.ToUpper(s.Element.Kind.String()), s.Element.TypeName)
		} else {
			b.WriteString(" element=ANY:any")
		}
	}
	b.WriteString(">")
	return b.String()
}
