package ir

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Meta is the metadata bag shared by Schema and Node: block comments,
// $key=value attributes and #tags. The required flag lives on Schema
// only.
type Meta struct {
	Comments []string
	Attr     map[string]Value
	Tags     []string
}

// HasMeta reports whether any metadata is present. Emptiness drives
// encoding decisions (no wrapper is emitted for an empty bag).
func (m *Meta) HasMeta() bool {
	return len(m.Comments) > 0 || len(m.Attr) > 0 || len(m.Tags) > 0
}

// AttrKeys returns the attribute keys in sorted order. Insertion order
// of attributes is not significant; sorted order is the canonical
// iteration order for encoding.
func (m *Meta) AttrKeys() []string {
	return slices.Sorted(maps.Keys(m.Attr))
}

func (m *Meta) clearCommonMeta() {
	m.Comments = nil
	m.Attr = nil
	m.Tags = nil
}

func (m *Meta) applyCommonMeta(info *MetaInfo) {
	if len(info.Comments) > 0 {
		m.Comments = append(m.Comments, info.Comments...)
	}
	if len(info.Attr) > 0 {
		if m.Attr == nil {
			m.Attr = map[string]Value{}
		}
		for k, v := range info.Attr {
			m.Attr[k] = v
		}
	}
	if len(info.Tags) > 0 {
		m.Tags = append(m.Tags, info.Tags...)
	}
}

// MetaInfo is the transient container a freshly scanned metadata block
// accumulates into before it is applied to a Schema or Node. It carries
// both the common bag and the schema-only !required constraint.
type MetaInfo struct {
	Comments []string
	Attr     map[string]Value
	Tags     []string
	Required bool
}

// SetAttr records one $key=value attribute; the last write for a key
// wins.
func (mi *MetaInfo) SetAttr(key string, v Value) {
	if mi.Attr == nil {
		mi.Attr = map[string]Value{}
	}
	mi.Attr[key] = v
}

// Merge folds another MetaInfo into this one. Comments and tags append,
// attributes overwrite per key. Required is overwritten, not OR'ed;
// the last block scanned decides.
func (mi *MetaInfo) Merge(o *MetaInfo) {
	mi.Comments = append(mi.Comments, o.Comments...)
	if len(o.Attr) > 0 {
		if mi.Attr == nil {
			mi.Attr = map[string]Value{}
		}
		for k, v := range o.Attr {
			mi.Attr[k] = v
		}
	}
	mi.Tags = append(mi.Tags, o.Tags...)
	mi.Required = o.Required
}

// Empty reports whether nothing at all was collected.
func (mi *MetaInfo) Empty() bool {
	return len(mi.Comments) == 0 && len(mi.Attr) == 0 && len(mi.Tags) == 0 && !mi.Required
}

func (mi *MetaInfo) String() string {
	parts := []string{}
	if mi.Required {
		parts = append(parts, "!required")
	}
	for _, t := range mi.Tags {
		parts = append(parts, "#"+t)
	}
	for _, k := range slices.Sorted(maps.Keys(mi.Attr)) {
		parts = append(parts, fmt.Sprintf("$%s=%s", k, mi.Attr[k].Text()))
	}
	if n := len(mi.Comments); n == 1 {
		c := mi.Comments[0]
		if len(c) > 15 {
			c = c[:15] + ".."
		}
		parts = append(parts, "/* "+c+" */")
	} else if n > 1 {
		parts = append(parts, fmt.Sprintf("/* %d comments */", n))
	}
	if len(parts) == 0 {
		return "<MetaInfo (empty)>"
	}
	return "<MetaInfo " + strings.Join(parts, " ") + ">"
}
