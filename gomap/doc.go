// Package gomap converts plain Go values into ir.Node trees, so data
// assembled in code (or unmarshaled from JSON/YAML) can be encoded as
// ADF without writing schemas by hand.
//
// Schemas are inferred: scalars map to primitives, slices to lists,
// and string-keyed maps to records. A slice of records gets a unified
// element schema holding the union of all fields seen across the
// elements; any other slice takes its first element's schema.
//
// # Usage
//
//	node, err := gomap.FromValue(map[string]any{"id": 1, "name": "x"})
//	text := encode.String(node)
package gomap
